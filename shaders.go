package void2d

// Default shaders. Vertex positions are given in normalized device
// coordinates.

var solidVertexShader = `#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

out vec4 vColor;

void main()
{
	gl_Position = vec4(aPos, 1.0);
	vColor = aColor;
}
`

var solidFragmentShader = `#version 330 core
in vec4 vColor;

out vec4 FragColor;

void main()
{
	FragColor = vColor;
}
`

var textureVertexShader = `#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;
layout (location = 2) in vec2 aTexCoord;

out vec4 vColor;
out vec2 vTexCoord;

void main()
{
	gl_Position = vec4(aPos, 1.0);
	vColor = aColor;
	vTexCoord = aTexCoord;
}
`

var textureFragmentShader = `#version 330 core
in vec4 vColor;
in vec2 vTexCoord;

out vec4 FragColor;

uniform sampler2D uTexture;

void main()
{
	FragColor = vColor * texture(uTexture, vTexCoord);
}
`
