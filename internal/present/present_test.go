package present

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"zdq/internal/config"
)

func TestListShowsConfigurationsInStoreOrder(t *testing.T) {
	color.NoColor = true

	st := config.NewStore()
	st.Add("pi", config.Configuration{
		Zig:    config.ZigTarget{Arch: "aarch64", Platform: "linux"},
		Docker: config.DockerTarget{Arch: "arm64", Platform: "linux", Image: "debian"},
	})
	st.Add("amd64", config.Configuration{
		Zig:    config.ZigTarget{Arch: "x86_64", Platform: "linux"},
		Docker: config.DockerTarget{Arch: "amd64", Platform: "linux", Image: "alpine"},
	})

	var buf bytes.Buffer
	List(&buf, st)
	out := buf.String()

	pi := strings.Index(out, "pi")
	amd := strings.Index(out, "amd64")
	if pi < 0 || amd < 0 {
		t.Fatalf("listing misses a configuration:\n%s", out)
	}
	if pi > amd {
		t.Fatalf("listing out of store order:\n%s", out)
	}
	if !strings.Contains(out, "aarch64-linux") || !strings.Contains(out, "linux/arm64") {
		t.Fatalf("listing misses target details:\n%s", out)
	}
	if !strings.Contains(out, "debian") {
		t.Fatalf("listing misses the image:\n%s", out)
	}
}

func TestUsageNamesEveryCommand(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf)
	out := buf.String()
	for _, cmd := range []string{"test", "run", "list", "help"} {
		if !strings.Contains(out, cmd) {
			t.Fatalf("usage text misses %q:\n%s", cmd, out)
		}
	}
	if !strings.Contains(out, "zdq [config] <command>") {
		t.Fatalf("usage text misses the grammar line:\n%s", out)
	}
}
