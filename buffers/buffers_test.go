package buffers

import "testing"

func TestComputeLayout(t *testing.T) {

	layout := []Element{
		{ElementType: DataTypeVec3},
		{ElementType: DataTypeVec3},
		{ElementType: DataTypeVec3},
		{ElementType: DataTypeVec2},
	}

	stride := computeLayout(layout)
	if stride != 44 {
		t.Errorf("stride: expected 44, got %d", stride)
	}

	wantOffsets := []int{0, 12, 24, 36}
	for i, e := range layout {
		if e.Offset != wantOffsets[i] {
			t.Errorf("element %d offset: expected %d, got %d", i, wantOffsets[i], e.Offset)
		}
	}
}

func TestStd140FrameBlock(t *testing.T) {

	// Same order as the Frame block in the lit and billboard shaders
	fields, size := computeStd140Layout([]UniformBufferFieldInput{
		{Id: 0, Type: DataTypeMat4},
		{Id: 1, Type: DataTypeVec3},
		{Id: 2, Type: DataTypeFloat32},
		{Id: 3, Type: DataTypeVec3},
		{Id: 4, Type: DataTypeFloat32},
		{Id: 5, Type: DataTypeVec4},
	})

	want := []uint16{0, 64, 76, 80, 92, 96}
	for i, f := range fields {
		if f.AlignedOffset != want[i] {
			t.Errorf("field %d (%s): expected offset %d, got %d", f.Id, f.Type, want[i], f.AlignedOffset)
		}
	}

	if size != 112 {
		t.Errorf("size: expected 112, got %d", size)
	}
}

func TestStd140ArraysAndMatrices(t *testing.T) {

	fields, size := computeStd140Layout([]UniformBufferFieldInput{
		{Id: 0, Type: DataTypeFloat32, Count: 3}, // 3 slots of 16
		{Id: 1, Type: DataTypeVec2},              // 48
		{Id: 2, Type: DataTypeMat3},              // 64, 3 columns of 16
		{Id: 3, Type: DataTypeInt32},             // 112
	})

	want := []uint16{0, 48, 64, 112}
	for i, f := range fields {
		if f.AlignedOffset != want[i] {
			t.Errorf("field %d (%s): expected offset %d, got %d", f.Id, f.Type, want[i], f.AlignedOffset)
		}
	}

	if fields[0].Count != 3 || fields[1].Count != 1 {
		t.Errorf("counts: expected 3 and 1, got %d and %d", fields[0].Count, fields[1].Count)
	}

	if size != 128 {
		t.Errorf("size: expected 128, got %d", size)
	}
}

func TestElementTypeSizes(t *testing.T) {

	tests := []struct {
		dt        ElementType
		size      int32
		compCount int32
		align     uint16
	}{
		{DataTypeFloat32, 4, 1, 4},
		{DataTypeVec2, 8, 2, 8},
		{DataTypeVec3, 12, 3, 16},
		{DataTypeVec4, 16, 4, 16},
		{DataTypeMat4, 64, 16, 16},
	}

	for _, tt := range tests {

		if tt.dt.Size() != tt.size || tt.dt.CompCount() != tt.compCount || tt.dt.GlStd140AlignmentBoundary() != tt.align {
			t.Errorf("%s: expected size=%d comps=%d align=%d, got size=%d comps=%d align=%d",
				tt.dt, tt.size, tt.compCount, tt.align, tt.dt.Size(), tt.dt.CompCount(), tt.dt.GlStd140AlignmentBoundary())
		}
	}

	if DataTypeUnknown.String() != "Unknown" || ElementType(200).String() != "Unknown" {
		t.Errorf("expected unknown types to print as Unknown")
	}
}
