//go:build !test
// +build !test

package sim

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const sceneVertexShader = `
#version 410 core
layout (location = 0) in vec3 aPos;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 worldPos;

void main() {
    vec4 wp = model * vec4(aPos, 1.0);
    worldPos = wp.xyz;
    gl_Position = projection * view * wp;
}
` + "\x00"

const sceneFragmentShader = `
#version 410 core
in vec3 worldPos;
out vec4 FragColor;

uniform vec3 uColor;
uniform int uChecker;     // 1 = checkerboard ground, 0 = flat color
uniform vec3 uCameraPos;
uniform float uFogDensity;
uniform vec3 uFogColor;

void main() {
    vec3 base = uColor;
    if (uChecker == 1) {
        float tile = mod(floor(worldPos.x / 2.0) + floor(worldPos.z / 2.0), 2.0);
        base = mix(uColor, uColor * 0.85, tile);
    }
    float dist = distance(worldPos, uCameraPos);
    float fog = clamp(1.0 - exp(-uFogDensity * dist), 0.0, 1.0);
    FragColor = vec4(mix(base, uFogColor, fog), 1.0);
}
` + "\x00"

// Renderer draws the ground plane and the vehicle node tree as colored
// cuboids. It has no animation logic of its own; everything it shows
// comes from node transforms the subsystems already wrote.
type Renderer struct {
	program   uint32
	cubeVAO   uint32
	groundVAO uint32

	modelLoc   int32
	viewLoc    int32
	projLoc    int32
	colorLoc   int32
	checkerLoc int32
	camPosLoc  int32
	fogDenLoc  int32
	fogColLoc  int32

	cameraPos Vec3
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.initShaders()
	r.initGeometry()
	return r
}

func (r *Renderer) initShaders() {
	vs := compileShader(sceneVertexShader, gl.VERTEX_SHADER)
	fs := compileShader(sceneFragmentShader, gl.FRAGMENT_SHADER)

	r.program = gl.CreateProgram()
	gl.AttachShader(r.program, vs)
	gl.AttachShader(r.program, fs)
	gl.LinkProgram(r.program)

	var ok int32
	gl.GetProgramiv(r.program, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetProgramiv(r.program, gl.INFO_LOG_LENGTH, &n)
		logText := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(r.program, n, nil, gl.Str(logText))
		panic(fmt.Errorf("shader link failed: %v", logText))
	}
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	r.modelLoc = gl.GetUniformLocation(r.program, gl.Str("model\x00"))
	r.viewLoc = gl.GetUniformLocation(r.program, gl.Str("view\x00"))
	r.projLoc = gl.GetUniformLocation(r.program, gl.Str("projection\x00"))
	r.colorLoc = gl.GetUniformLocation(r.program, gl.Str("uColor\x00"))
	r.checkerLoc = gl.GetUniformLocation(r.program, gl.Str("uChecker\x00"))
	r.camPosLoc = gl.GetUniformLocation(r.program, gl.Str("uCameraPos\x00"))
	r.fogDenLoc = gl.GetUniformLocation(r.program, gl.Str("uFogDensity\x00"))
	r.fogColLoc = gl.GetUniformLocation(r.program, gl.Str("uFogColor\x00"))
}

func (r *Renderer) initGeometry() {
	// Unit cube centered on the origin; per-mesh size comes in through
	// the model matrix.
	cube := []float32{
		-0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
		-0.5, -0.5, -0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
	}
	cubeIdx := []uint32{
		0, 1, 2, 2, 3, 0,
		4, 5, 6, 6, 7, 4,
		7, 3, 0, 0, 4, 7,
		1, 5, 6, 6, 2, 1,
		3, 2, 6, 6, 7, 3,
		0, 1, 5, 5, 4, 0,
	}
	r.cubeVAO = makeIndexedVAO(cube, cubeIdx)

	ground := []float32{
		-200, 0, -200, 200, 0, -200, 200, 0, 200, -200, 0, 200,
	}
	groundIdx := []uint32{0, 1, 2, 2, 3, 0}
	r.groundVAO = makeIndexedVAO(ground, groundIdx)
}

func makeIndexedVAO(vertices []float32, indices []uint32) uint32 {
	var vao, vbo, ebo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.GenBuffers(1, &ebo)

	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return vao
}

func (r *Renderer) SetCamera(pos Vec3) {
	r.cameraPos = pos
}

// DrawScene renders the ground and the vehicle for one frame.
func (r *Renderer) DrawScene(vehicle *Node, view, projection mgl32.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.viewLoc, 1, false, &view[0])
	gl.UniformMatrix4fv(r.projLoc, 1, false, &projection[0])
	gl.Uniform3f(r.camPosLoc, float32(r.cameraPos.X), float32(r.cameraPos.Y), float32(r.cameraPos.Z))
	gl.Uniform1f(r.fogDenLoc, 0.012)
	gl.Uniform3f(r.fogColLoc, 0.5, 0.7, 0.9)

	r.drawGround()
	r.drawNodeTree(vehicle)
}

func (r *Renderer) drawGround() {
	// Keep the plane centered under the camera target so it reads as
	// infinite while the vehicle flies forward.
	model := mgl32.Translate3D(float32(r.cameraPos.X), 0, float32(r.cameraPos.Z))
	gl.UniformMatrix4fv(r.modelLoc, 1, false, &model[0])
	gl.Uniform1i(r.checkerLoc, 1)
	gl.Uniform3f(r.colorLoc, 0.3, 0.65, 0.3)
	gl.BindVertexArray(r.groundVAO)
	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (r *Renderer) drawNodeTree(root *Node) {
	gl.Uniform1i(r.checkerLoc, 0)
	r.drawSubtree(root, mgl32.Ident4())
}

func (r *Renderer) drawSubtree(n *Node, parent mgl32.Mat4) {
	world := parent.Mul4(nodeTransform(n))
	if n.Kind == NodeKindMesh {
		r.drawMesh(n, world)
	}
	for _, c := range n.Children {
		r.drawSubtree(c, world)
	}
}

func (r *Renderer) drawMesh(n *Node, world mgl32.Mat4) {
	if n.Kind != NodeKindMesh {
		return
	}
	sz := n.Size
	if sz == (Vec3{}) {
		sz = Vec3{0.2, 0.2, 0.2}
	}
	model := world.Mul4(mgl32.Scale3D(float32(sz.X), float32(sz.Y), float32(sz.Z)))
	gl.UniformMatrix4fv(r.modelLoc, 1, false, &model[0])

	cr, cg, cb := meshColor(n.Name)
	gl.Uniform3f(r.colorLoc, cr, cg, cb)
	gl.BindVertexArray(r.cubeVAO)
	gl.DrawElements(gl.TRIANGLES, 36, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func meshColor(name string) (float32, float32, float32) {
	switch {
	case strings.HasPrefix(name, "propeller"):
		return 0.15, 0.15, 0.18
	case name == "skid":
		return 0.35, 0.35, 0.38
	}
	return 0.85, 0.3, 0.25
}

// nodeTransform builds T * Ry * Rx * Rz from the node's local transform,
// the same Euler order the control subsystems assume.
func nodeTransform(n *Node) mgl32.Mat4 {
	t := mgl32.Translate3D(float32(n.Position.X), float32(n.Position.Y), float32(n.Position.Z))
	ry := mgl32.HomogRotate3DY(float32(n.Rotation.Y))
	rx := mgl32.HomogRotate3DX(float32(n.Rotation.X))
	rz := mgl32.HomogRotate3DZ(float32(n.Rotation.Z))
	return t.Mul4(ry).Mul4(rx).Mul4(rz)
}

func compileShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	src, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, src, nil)
	free()
	gl.CompileShader(shader)

	var ok int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		logText := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(shader, n, nil, gl.Str(logText))
		panic(fmt.Errorf("shader compile failed: %v", logText))
	}
	return shader
}
