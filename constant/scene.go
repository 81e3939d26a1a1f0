package constant

// Particle field motion
const (
	// ParticleBound is the per-axis position magnitude past which a velocity component flips sign
	// Fixed for every field regardless of its spawn spread
	ParticleBound = 5.0

	// ParticleSpeedSpread scales the uniform [-0.5, 0.5) velocity sample per axis
	ParticleSpeedSpread = 0.02

	// FieldSpin is the per-frame rotation increment on x and y, shared by all fields
	FieldSpin = 0.0005

	ParticleOpacity = 0.8
)

// Scene field definitions: count, point size, hex color, spawn spread
type FieldDef struct {
	Count  int
	Size   float32
	Color  string
	Spread float64
}

// SceneFields is the fixed particle composition, purple, magenta, orange
var SceneFields = [3]FieldDef{
	{Count: 1500, Size: 0.005, Color: "#8B5CF6", Spread: 5},
	{Count: 1000, Size: 0.003, Color: "#D946EF", Spread: 4},
	{Count: 800, Size: 0.004, Color: "#F97316", Spread: 3},
}

// Ornaments
const (
	// OrnamentCount is fixed to one per shape kind
	OrnamentCount = 3

	// OrnamentSpawnSpread is the full width of the spawn cube centered at the origin
	OrnamentSpawnSpread = 3.0

	OrnamentSpinX = 0.002
	OrnamentSpinY = 0.003

	// OrnamentDriftFreq scales wall-clock milliseconds into the drift phase
	OrnamentDriftFreq = 0.001

	// OrnamentDriftAmp is the per-frame additive drift step
	OrnamentDriftAmp = 0.002

	TorusRadius          = 0.3
	TorusTube            = 0.1
	TorusRadialSegments  = 16
	TorusTubularSegments = 32
	OctahedronRadius     = 0.2
	TetrahedronRadius    = 0.2
)

// OrnamentColors are the wireframe material colors in ornament order
var OrnamentColors = [OrnamentCount]string{"#8B5CF6", "#D946EF", "#F97316"}

// Camera
const (
	CameraFOV  = 75.0 // vertical, degrees
	CameraNear = 0.1
	CameraFar  = 1000.0
	CameraZ    = 3.0

	// CameraTargetScale pre-scales the pointer target before smoothing
	CameraTargetScale = 0.5

	// CameraDamping is the fraction of the remaining gap closed per frame
	CameraDamping = 0.05
)

// Lights
const (
	AmbientColor         = 0x404040
	AmbientIntensity     = 1.0
	DirectionalColor     = 0xFFFFFF
	DirectionalIntensity = 1.0
)

// DirectionalPosition places the directional light, which shines toward the origin
var DirectionalPosition = [3]float64{1, 1, 1}
