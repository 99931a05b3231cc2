package shaders

import "testing"

func TestSplitCombinedSource(t *testing.T) {

	src := []byte(`
//shader:vertex
#version 410
void main() {}

//shader:fragment
#version 410
void main() {}
`)

	stages, err := SplitCombinedSource(src)
	if err != nil {
		t.Fatal(err)
	}

	if len(stages) != 2 {
		t.Fatalf("stages: expected 2, got %d", len(stages))
	}

	if stages[0].Type != ShaderType_Vertex || stages[1].Type != ShaderType_Fragment {
		t.Errorf("stage types: expected vertex then fragment, got %s then %s", stages[0].Type, stages[1].Type)
	}

	want := "\n#version 410\nvoid main() {}\n\n"
	if string(stages[0].Src) != want {
		t.Errorf("vertex src: expected %q, got %q", want, stages[0].Src)
	}
}

func TestSplitCombinedSourceErrors(t *testing.T) {

	tests := []struct {
		name string
		src  string
	}{
		{"no markers", "#version 410\nvoid main() {}"},
		{"missing fragment", "//shader:vertex\nvoid main() {}"},
		{"missing vertex", "//shader:fragment\nvoid main() {}"},
		{"unknown stage", "//shader:vertex\n//shader:compute\n//shader:fragment\n"},
		{"duplicate stage", "//shader:vertex\n//shader:vertex\n//shader:fragment\n"},
		{"code before marker", "float x;\n//shader:vertex\n//shader:fragment\n"},
	}

	for _, tt := range tests {
		if _, err := SplitCombinedSource([]byte(tt.src)); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}
