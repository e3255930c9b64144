package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_BlocksBecomeLines(t *testing.T) {
	input := `<!doctype html>
<html><head><title>Notes</title><style>p { color: red }</style></head>
<body>
<nav>Home | About</nav>
<h1>Cell Biology</h1>
<p>Cells are the basic
   unit of <b>life</b>.</p>
<ul><li>Nucleus</li><li>Mitochondria</li></ul>
<script>var x = 1;</script>
<div>Loose text in a div</div>
<footer>Copyright</footer>
</body></html>`

	p := &HTMLParser{}
	got, err := p.Parse(strings.NewReader(input), "notes.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Cell Biology\nCells are the basic unit of life.\nNucleus\nMitochondria\nLoose text in a div\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHTMLParser_NoBody(t *testing.T) {
	p := &HTMLParser{}
	got, err := p.Parse(strings.NewReader("<p>Just a fragment</p>"), "frag.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Just a fragment\n" {
		t.Errorf("expected %q, got %q", "Just a fragment\n", got)
	}
}
