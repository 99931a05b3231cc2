package materials

import "testing"

func TestMaterialSettings(t *testing.T) {

	var s MaterialSettings
	if s.Has(MaterialSettings_HasModelMtx) {
		t.Fatalf("expected empty settings")
	}

	s.Set(MaterialSettings_HasModelMtx | MaterialSettings_NoDepthWrite)
	if !s.Has(MaterialSettings_HasModelMtx) || !s.Has(MaterialSettings_NoDepthWrite) {
		t.Errorf("expected both flags set, got %b", s)
	}

	if s.Has(MaterialSettings(4)) {
		t.Errorf("expected unset flag to be missing, got %b", s)
	}

	if MaterialSettings_HasModelMtx != 1 || MaterialSettings_NoDepthWrite != 2 {
		t.Errorf("flag values: expected 1 and 2, got %d and %d", MaterialSettings_HasModelMtx, MaterialSettings_NoDepthWrite)
	}
}
