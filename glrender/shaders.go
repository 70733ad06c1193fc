package glrender

// GLSL sources shared by the demos. Attribute names match the Vertex and
// TexVertex layouts: aPos and aColor, or aPos and aUV.
const (
	// ColorVertexShader passes positions through untransformed, in normalized device coordinates.
	ColorVertexShader = `#version 410 core
in vec3 aPos;
in vec3 aColor;
out vec3 vColor;
void main() {
	gl_Position = vec4(aPos, 1.0);
	vColor = aColor;
}
`

	// ProjectedVertexShader applies projection only.
	ProjectedVertexShader = `#version 410 core
in vec3 aPos;
in vec3 aColor;
uniform mat4 uProjection;
out vec3 vColor;
void main() {
	gl_Position = uProjection * vec4(aPos, 1.0);
	vColor = aColor;
}
`

	// MVPVertexShader applies model, view and projection matrices.
	MVPVertexShader = `#version 410 core
in vec3 aPos;
in vec3 aColor;
uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;
out vec3 vColor;
void main() {
	gl_Position = uProjection * uView * uModel * vec4(aPos, 1.0);
	vColor = aColor;
}
`

	ColorFragmentShader = `#version 410 core
in vec3 vColor;
out vec4 fragColor;
void main() {
	fragColor = vec4(vColor, 1.0);
}
`

	TextureVertexShader = `#version 410 core
in vec3 aPos;
in vec2 aUV;
out vec2 vUV;
void main() {
	gl_Position = vec4(aPos, 1.0);
	vUV = aUV;
}
`

	TextureFragmentShader = `#version 410 core
in vec2 vUV;
uniform sampler2D uTexture;
out vec4 fragColor;
void main() {
	fragColor = texture(uTexture, vUV);
}
`
)
