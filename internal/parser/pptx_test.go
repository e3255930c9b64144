package parser

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func slideXML(paras ...[]string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	b.WriteString(`<p:cSld><p:spTree><p:sp><p:txBody>`)
	for _, runs := range paras {
		b.WriteString(`<a:p>`)
		for _, r := range runs {
			b.WriteString(`<a:r><a:rPr lang="en-US"/><a:t>` + r + `</a:t></a:r>`)
		}
		b.WriteString(`</a:p>`)
	}
	b.WriteString(`</p:txBody></p:sp></p:spTree></p:cSld></p:sld>`)
	return b.String()
}

func buildPPTX(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestPPTXParser_SlidesInNumericOrder(t *testing.T) {
	data := buildPPTX(t, map[string]string{
		"ppt/slides/slide10.xml":           slideXML([]string{"Slide ten text"}),
		"ppt/slides/slide2.xml":            slideXML([]string{"Slide two text"}),
		"ppt/slides/slide1.xml":            slideXML([]string{"Photosynthesis"}, []string{"Light ", "reactions"}),
		"ppt/slides/_rels/slide1.xml.rels": `<Relationships/>`,
		"ppt/presentation.xml":             `<p:presentation/>`,
	})

	p := &PPTXParser{}
	got, err := p.Parse(bytes.NewReader(data), "deck.pptx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Photosynthesis\nLight reactions\n\nSlide two text\n\nSlide ten text\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPPTXParser_NoSlides(t *testing.T) {
	data := buildPPTX(t, map[string]string{"ppt/presentation.xml": `<p:presentation/>`})
	p := &PPTXParser{}
	if _, err := p.Parse(bytes.NewReader(data), "empty.pptx"); err == nil {
		t.Fatal("expected error for archive without slides")
	}
}

func TestPPTXParser_NotAZip(t *testing.T) {
	p := &PPTXParser{}
	if _, err := p.Parse(strings.NewReader("plain text"), "fake.pptx"); err == nil {
		t.Fatal("expected error for non-zip input")
	}
}
