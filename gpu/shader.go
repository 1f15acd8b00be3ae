package gpu

import _ "embed"

// PrimitivesWGSL is the shader that draws encoded instances. Native renderers that do
// not bundle their own copy receive it through facet_load_shader.
//
//go:embed shaders/primitives.wgsl
var PrimitivesWGSL string

// Shader entry points.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)
