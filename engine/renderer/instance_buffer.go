package renderer

import "github.com/satset19/porto-with-glm/common"

// GPUInstanceData is the per-instance record laid out for a storage buffer.
// Each vec3 is padded to 16 bytes to satisfy WGSL struct alignment, giving a
// 48-byte stride.
type GPUInstanceData struct {
	Position [3]float32
	_        float32
	Rotation [3]float32
	_        float32
	Scale    [3]float32
	_        float32
}

// InstanceArena is a reusable CPU-side staging area for instance records. It
// is sized once for the fragment population and rewritten in place every
// frame, so steady-state frames allocate nothing.
type InstanceArena struct {
	data []GPUInstanceData
	used int
}

// NewInstanceArena allocates an arena with the given capacity.
//
// Parameters:
//   - capacity: the maximum number of instances the arena holds
//
// Returns:
//   - *InstanceArena: the arena
func NewInstanceArena(capacity int) *InstanceArena {
	if capacity < 0 {
		capacity = 0
	}
	return &InstanceArena{data: make([]GPUInstanceData, capacity)}
}

// Stage rewrites the arena contents from the given instances. Instances
// beyond the arena's capacity are dropped.
//
// Parameters:
//   - instances: the frame's instance tuples
//
// Returns:
//   - int: the number of instances staged
func (a *InstanceArena) Stage(instances []Instance) int {
	n := len(instances)
	if n > len(a.data) {
		n = len(a.data)
	}
	for i := 0; i < n; i++ {
		rec := &a.data[i]
		rec.Position = instances[i].Position
		rec.Rotation = instances[i].Rotation
		rec.Scale = instances[i].Scale
	}
	a.used = n
	return n
}

// Len returns the number of instances currently staged.
func (a *InstanceArena) Len() int {
	return a.used
}

// Cap returns the arena capacity.
func (a *InstanceArena) Cap() int {
	return len(a.data)
}

// Bytes returns the staged records as a raw byte slice suitable for a
// queue.WriteBuffer upload. The slice aliases the arena's storage.
//
// Returns:
//   - []byte: the staged records, 48 bytes per instance
func (a *InstanceArena) Bytes() []byte {
	return common.SliceToBytes(a.data[:a.used])
}

// ModelMatrix builds the column-major model matrix for the staged record at
// the given index.
//
// Parameters:
//   - index: the staged record index
//
// Returns:
//   - [16]float32: the model matrix
func (a *InstanceArena) ModelMatrix(index int) [16]float32 {
	rec := a.data[index]
	var out [16]float32
	common.BuildModelMatrix(out[:],
		rec.Position[0], rec.Position[1], rec.Position[2],
		rec.Rotation[0], rec.Rotation[1], rec.Rotation[2],
		rec.Scale[0], rec.Scale[1], rec.Scale[2])
	return out
}
