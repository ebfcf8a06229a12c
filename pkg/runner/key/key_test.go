package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestKeyListsBindings(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	if err := (&Key{Out: &out}).Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Keys", "Action", "toggle completion", "quit"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in:\n%s", want, out.String())
		}
	}
}
