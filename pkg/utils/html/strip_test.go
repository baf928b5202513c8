package html

import "testing"

func TestStripHTML_RemovesTags(t *testing.T) {
	got := StripHTML(`<blockquote class="twitter-tweet"><p>Launch day!</p>&mdash; NASA</blockquote>`)
	if got != "Launch day! — NASA" {
		t.Errorf("StripHTML = %q", got)
	}
}

func TestStripHTML_CollapsesWhitespace(t *testing.T) {
	got := StripHTML("<div>  spaced \n out  </div>")
	if got != "spaced out" {
		t.Errorf("StripHTML = %q", got)
	}
}

func TestStripHTML_PlainTextUnchanged(t *testing.T) {
	got := StripHTML("no markup here")
	if got != "no markup here" {
		t.Errorf("StripHTML = %q", got)
	}
}
