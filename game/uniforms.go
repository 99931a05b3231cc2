package game

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/scp087/buffers"
	"github.com/bloeys/scp087/level"
	"github.com/chewxy/math32"
)

// Field ids of the Frame uniform block, in declaration order
const (
	frameFieldProjView uint16 = iota
	frameFieldCamPos
	frameFieldFogDensity
	frameFieldFogColor
	frameFieldTime
	frameFieldAmbient
)

func newFrameUbo() buffers.UniformBuffer {

	ubo := buffers.NewUniformBuffer([]buffers.UniformBufferFieldInput{
		{Id: frameFieldProjView, Type: buffers.DataTypeMat4},
		{Id: frameFieldCamPos, Type: buffers.DataTypeVec3},
		{Id: frameFieldFogDensity, Type: buffers.DataTypeFloat32},
		{Id: frameFieldFogColor, Type: buffers.DataTypeVec3},
		{Id: frameFieldTime, Type: buffers.DataTypeFloat32},
		{Id: frameFieldAmbient, Type: buffers.DataTypeVec4},
	}, buffers.BufUsage_Dynamic_Draw)

	ubo.SetBindPoint(frameBindPoint)
	return ubo
}

// FrameUniforms is every shader input that changes per frame
type FrameUniforms struct {
	ProjView   gglm.Mat4
	CamPos     gglm.Vec3
	FogDensity float32
	FogColor   gglm.Vec3
	Time       float32
	Ambient    gglm.Vec4

	LightPos gglm.Vec3
	// LightColor is in [0,1]
	LightColor   gglm.Vec3
	LightEnabled int32

	// Billboards are built along these
	CamRight gglm.Vec3
	CamUp    gglm.Vec3
}

// frameUniforms computes the shader inputs from the session state without touching GL
func (s *Session) frameUniforms(time float32) FrameUniforms {

	l := &s.Cfg.Lighting
	fog := &s.Cfg.Fog

	u := FrameUniforms{
		ProjView:   s.Cam.ProjView(),
		CamPos:     s.Cam.Pos,
		FogDensity: s.Outputs.FogDensity,
		FogColor:   gglm.NewVec3(fog.Color[0], fog.Color[1], fog.Color[2]),
		Time:       time,
		Ambient:    gglm.NewVec4(l.Ambient[0], l.Ambient[1], l.Ambient[2], l.Ambient[3]),

		LightPos: gglm.NewVec3(s.Cam.Pos.X(), s.Cam.Pos.Y()+l.LightYOffset, s.Cam.Pos.Z()),
		LightColor: gglm.NewVec3(
			float32(s.Outputs.LightRed)/255,
			l.LightColor[1]/255,
			l.LightColor[2]/255,
		),
	}

	if s.LightEnabled {
		u.LightEnabled = 1
	}

	u.CamRight, u.CamUp = cameraAxes(&s.Cam.Forward, &s.Cam.WorldUp)
	return u
}

// cameraAxes returns the unit right and up vectors of a camera looking along forward
func cameraAxes(forward, worldUp *gglm.Vec3) (right, up gglm.Vec3) {

	f := forward.Data
	w := worldUp.Data

	// right = forward x worldUp
	r := [3]float32{
		f[1]*w[2] - f[2]*w[1],
		f[2]*w[0] - f[0]*w[2],
		f[0]*w[1] - f[1]*w[0],
	}

	rl := math32.Sqrt(r[0]*r[0] + r[1]*r[1] + r[2]*r[2])
	if rl == 0 {
		// Looking straight along world up, any horizontal right works
		return gglm.NewVec3(1, 0, 0), gglm.NewVec3(0, 0, -1)
	}
	r[0], r[1], r[2] = r[0]/rl, r[1]/rl, r[2]/rl

	// up = right x forward, already unit since both are unit and perpendicular
	fl := math32.Sqrt(f[0]*f[0] + f[1]*f[1] + f[2]*f[2])
	fn := [3]float32{f[0] / fl, f[1] / fl, f[2] / fl}
	u := [3]float32{
		r[1]*fn[2] - r[2]*fn[1],
		r[2]*fn[0] - r[0]*fn[2],
		r[0]*fn[1] - r[1]*fn[0],
	}

	return gglm.NewVec3(r[0], r[1], r[2]), gglm.NewVec3(u[0], u[1], u[2])
}

// uploadFrameUniforms writes the shared Frame block every scene shader reads
func (s *Session) uploadFrameUniforms(u *FrameUniforms) {

	s.frameUbo.Bind()
	s.frameUbo.SetMat4(frameFieldProjView, &u.ProjView)
	s.frameUbo.SetVec3(frameFieldCamPos, &u.CamPos)
	s.frameUbo.SetFloat32(frameFieldFogDensity, u.FogDensity)
	s.frameUbo.SetVec3(frameFieldFogColor, &u.FogColor)
	s.frameUbo.SetFloat32(frameFieldTime, u.Time)
	s.frameUbo.SetVec4(frameFieldAmbient, &u.Ambient)
	s.frameUbo.UnBind()

	if s.Cfg.Face.Enabled {
		s.faceMat.SetUnifVec3("camRight", &u.CamRight)
		s.faceMat.SetUnifVec3("camUp", &u.CamUp)
	}
}

// uploadLight sets the point light on every scenery material
func (s *Session) uploadLight(u *FrameUniforms) {

	for p := range s.pieceMats {

		if !s.scenery.IsBound(level.Piece(p)) {
			continue
		}

		mat := &s.pieceMats[p]
		mat.SetUnifVec3("lightPos", &u.LightPos)
		mat.SetUnifVec3("lightColor", &u.LightColor)
		mat.SetUnifInt32("lightEnabled", u.LightEnabled)
	}
}
