package preset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/glstate"
	"github.com/gogpu/glstate/gl"
	"github.com/gogpu/glstate/recording"
)

const sample = `
tier: extended
presets:
  overlay:
    description: premultiplied overlay
    parameters:
      blend: true
      blendFunc: [ONE, ONE_MINUS_SRC_ALPHA]
      DEPTH_TEST: false
  scissored:
    extends: overlay
    parameters:
      scissorTest: true
      scissor: [0, 0, 256, 256]
      blendFunc: [SRC_ALPHA, ONE_MINUS_SRC_ALPHA]
  stencil:
    parameters:
      stencilFunc: [EQUAL, 1, 0xFF]
      stencilOp: [KEEP, KEEP, REPLACE]
      framebuffer: null
`

func mustParse(t *testing.T, data string) *File {
	t.Helper()
	f, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return f
}

func TestParse(t *testing.T) {
	f := mustParse(t, sample)
	if f.Tier == nil || *f.Tier != glstate.TierExtended {
		t.Errorf("Tier = %v, want extended", f.Tier)
	}
	names := f.Names()
	want := []string{"overlay", "scissored", "stencil"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
	if got := f.Presets["overlay"].Description; got != "premultiplied overlay" {
		t.Errorf("Description = %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	for _, data := range []string{
		"tier: vulkan\n",
		"presets: [1, 2]\n",
		"presets:\n  a:\n    parameters: 3\n",
	} {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("Parse(%q) should fail", data)
		}
	}

	f := mustParse(t, "")
	if len(f.Presets) != 0 || f.Tier != nil {
		t.Errorf("empty file = %+v", f)
	}
}

func TestResolve(t *testing.T) {
	f := mustParse(t, sample)
	table := glstate.TableFor(glstate.TierExtended)

	params, err := f.Resolve("scissored", table)
	if err != nil {
		t.Fatal(err)
	}
	state, err := table.Expand(params)
	if err != nil {
		t.Fatal(err)
	}
	checks := map[gl.Enum]glstate.Value{
		gl.BLEND:        true,
		gl.DEPTH_TEST:   false,
		gl.SCISSOR_TEST: true,
		gl.SCISSOR_BOX:  [4]int32{0, 0, 256, 256},
		// The child preset overrides the inherited blendFunc.
		gl.BLEND_SRC_RGB:   gl.SRC_ALPHA,
		gl.BLEND_DST_ALPHA: gl.ONE_MINUS_SRC_ALPHA,
	}
	for k, want := range checks {
		if state[k] != want {
			t.Errorf("%v = %v, want %v", k, state[k], want)
		}
	}

	params, err = f.Resolve("stencil", table)
	if err != nil {
		t.Fatal(err)
	}
	state, err = table.Expand(params)
	if err != nil {
		t.Fatal(err)
	}
	if state[gl.STENCIL_BACK_REF] != int32(1) || state[gl.STENCIL_VALUE_MASK] != uint32(0xFF) {
		t.Errorf("stencil state = %v", state)
	}
	if state[gl.READ_FRAMEBUFFER_BINDING] != gl.NoHandle {
		t.Errorf("READ_FRAMEBUFFER_BINDING = %v, want null", state[gl.READ_FRAMEBUFFER_BINDING])
	}
}

func TestResolveErrors(t *testing.T) {
	f := mustParse(t, `
presets:
  loop-a: {extends: loop-b, parameters: {blend: true}}
  loop-b: {extends: loop-a, parameters: {blend: false}}
  orphan: {extends: missing, parameters: {}}
  badname: {parameters: {notAParameter: 1}}
  badvalue: {parameters: {viewport: [1, 2]}}
  extended: {parameters: {rasterizerDiscard: true}}
  conflict: {parameters: {stencilFunc: [EQUAL, 1, 255], stencilFuncFront: [LESS, 1, 255]}}
`)
	baseline := glstate.TableFor(glstate.TierBaseline)

	tests := []struct {
		name string
		want error
	}{
		{"loop-a", ErrExtendsCycle},
		{"orphan", ErrUnknownPreset},
		{"nope", ErrUnknownPreset},
		{"badname", glstate.ErrUnsupportedParameter},
		{"badvalue", glstate.ErrInvalidValueShape},
		{"extended", glstate.ErrCapabilityMismatch},
		{"conflict", glstate.ErrConflictingParameter},
	}
	for _, tt := range tests {
		if _, err := f.Resolve(tt.name, baseline); !errors.Is(err, tt.want) {
			t.Errorf("Resolve(%q) = %v, want %v", tt.name, err, tt.want)
		}
	}

	if err := f.Validate(baseline); !errors.Is(err, ErrExtendsCycle) || !errors.Is(err, glstate.ErrConflictingParameter) {
		t.Errorf("Validate() = %v, want joined failures", err)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("GLSTATE_TEST_WIDTH", "320")
	path := filepath.Join(t.TempDir(), "presets.yaml")
	data := "presets:\n  half:\n    parameters:\n      viewport: [0, 0, ${GLSTATE_TEST_WIDTH}, 240]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	ctx := recording.New()
	tr := glstate.New(ctx)
	params, err := f.Resolve("half", tr.Table())
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.SetParameters(params); err != nil {
		t.Fatal(err)
	}
	if got := ctx.GetInteger4(gl.VIEWPORT); got != [4]int{0, 0, 320, 240} {
		t.Errorf("VIEWPORT = %v", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}
