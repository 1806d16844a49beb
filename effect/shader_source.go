package effect

// Uniform names shared by the effect shaders and Locate.
const (
	uniformWorld                 = "uWorld"
	uniformView                  = "uView"
	uniformProjection            = "uProjection"
	uniformWorldViewProjection   = "uWorldViewProjection"
	uniformWorldInverseTranspose = "uWorldInverseTranspose"
	uniformEyePosition           = "uEyePosition"
	uniformBones                 = "uBones"
)

// Matrices are uploaded untransposed: row-major row-vector storage reads as
// column-major column-vector in GLSL, so shaders multiply matrix * vector.

const BasicVertexSource = `#version 300 es
	layout (location = 0) in vec4 aPosition;
	layout (location = 1) in vec3 aNormal;
	uniform mat4 uWorld;
	uniform mat4 uWorldViewProjection;
	uniform mat4 uWorldInverseTranspose;
	uniform vec3 uEyePosition;
	out lowp vec4 vColor;

	void main(void) {
		vec3 pos = vec3(uWorld * aPosition);
		vec3 n = normalize(vec3(uWorldInverseTranspose * vec4(aNormal, 0.0)));
		vec3 l = normalize(vec3(0.3, 0.8, 0.5));
		vec3 h = normalize(l + normalize(uEyePosition - pos));
		float diffuse = max(dot(n, l), 0.0);
		float specular = pow(max(dot(n, h), 0.0), 16.0);
		gl_Position = uWorldViewProjection * aPosition;
		vColor = vec4(vec3(0.1) + vec3(0.7) * diffuse + vec3(0.3) * specular, 1.0);
	}
`

const SkinnedVertexSource = `#version 300 es
	layout (location = 0) in vec4 aPosition;
	layout (location = 1) in vec3 aNormal;
	layout (location = 2) in uvec4 aBoneIndices;
	layout (location = 3) in vec4 aBoneWeights;
	uniform mat4 uBones[60];
	uniform mat4 uWorld;
	uniform mat4 uWorldViewProjection;
	uniform mat4 uWorldInverseTranspose;
	out lowp vec4 vColor;

	void main(void) {
		mat4 skin =
			uBones[aBoneIndices.x] * aBoneWeights.x +
			uBones[aBoneIndices.y] * aBoneWeights.y +
			uBones[aBoneIndices.z] * aBoneWeights.z +
			uBones[aBoneIndices.w] * aBoneWeights.w;
		vec4 pos = skin * aPosition;
		vec3 n = normalize(vec3(uWorldInverseTranspose * skin * vec4(aNormal, 0.0)));
		float diffuse = max(dot(n, normalize(vec3(0.3, 0.8, 0.5))), 0.0);
		gl_Position = uWorldViewProjection * pos;
		vColor = vec4(vec3(0.1) + vec3(0.8) * diffuse, 1.0);
	}
`

const FragmentSource = `#version 300 es
	in lowp vec4 vColor;
	out lowp vec4 outColor;

	void main(void) {
		outColor = vColor;
	}
`
