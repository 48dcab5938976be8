package rgl

// Shaders are embedded as source and compiled at Open, so the binary has no
// runtime shader file dependencies.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
out vec4 finalColor;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 lightDir;
uniform vec4 lightColor;
uniform vec4 ambient;
uniform float tiling;
void main() {
  vec3 n = normalize(fragNormal);
  float diff = max(dot(n, -normalize(lightDir)), 0.0);
  vec4 texel = texture(texture0, fragTexCoord * tiling);
  vec4 light = ambient + lightColor * diff;
  finalColor = texel * colDiffuse * vec4(light.rgb, 1.0);
}
`

	// reflFS samples the 4-view panorama strip produced by Capture. The
	// reflected direction picks one of the four 90-degree faces and the
	// in-face offset is the perspective tangent, mirroring how the strip
	// was rendered.
	reflFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
out vec4 finalColor;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
const float PI = 3.14159265359;
const float HALF_PI = 1.57079632679;
void main() {
  vec3 n = normalize(fragNormal);
  vec3 view = normalize(fragPosition - viewPos);
  vec3 d = reflect(view, n);

  float lon = atan(d.z, d.x);
  float face = clamp(floor((lon + PI) / HALF_PI), 0.0, 3.0);
  float center = -PI + (face + 0.5) * HALF_PI;
  float localU = tan(lon - center);
  float horiz = length(d.xz);
  float localV = d.y / max(horiz * cos(lon - center), 1e-4);

  float u = (face + 0.5 + clamp(localU, -1.0, 1.0) * 0.5) / 4.0;
  // render textures sample y-flipped
  float v = 0.5 + clamp(localV, -1.0, 1.0) * 0.5;

  vec4 env = texture(texture0, vec2(u, v));
  float fresnel = 0.35 + 0.65 * pow(1.0 - max(dot(n, -view), 0.0), 2.0);
  finalColor = vec4(env.rgb * fresnel + colDiffuse.rgb * 0.08, 1.0);
}
`
)
