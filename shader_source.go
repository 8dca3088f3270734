package main

const vsSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	uniform mat4 uModelViewMatrix;
	uniform mat4 uProjectionMatrix;
	uniform float uZMin;
	uniform float uZRange;
	uniform float uPointSize;
	out lowp float vHeight;

	void main(void) {
		gl_Position = uProjectionMatrix * uModelViewMatrix * aVertexPosition;
		gl_PointSize = uPointSize;
		vHeight = clamp((aVertexPosition.z - uZMin) / uZRange, 0.0, 1.0);
	}
`

const fsSource = `#version 300 es
	precision lowp float;
	in lowp float vHeight;
	uniform float uAlpha;
	out vec4 outColor;

	void main(void) {
		vec3 low = vec3(0.2, 0.5, 0.8);
		vec3 high = vec3(1.0, 0.8, 0.3);
		outColor = vec4(mix(low, high, vHeight), uAlpha);
	}
`

const vsOverlaySource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	layout (location = 1) in vec2 aTexCoord;
	uniform mat4 uModelViewMatrix;
	uniform mat4 uProjectionMatrix;
	out vec2 vTexCoord;

	void main(void) {
		gl_Position = uProjectionMatrix * uModelViewMatrix * aVertexPosition;
		vTexCoord = aTexCoord;
	}
`

const fsOverlaySource = `#version 300 es
	precision lowp float;
	in vec2 vTexCoord;
	uniform sampler2D uTexture;
	uniform float uAlpha;
	out vec4 outColor;

	void main(void) {
		vec4 c = texture(uTexture, vTexCoord);
		outColor = vec4(c.rgb, c.a * uAlpha);
	}
`
