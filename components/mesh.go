package components

// Model is a handle to vertex data owned by the rendering layer.
type Model struct {
	Name        string
	VertexCount int
}

// Texture is a handle to image data owned by the rendering layer.
type Texture struct {
	Name          string
	Width, Height int
}

// Mesh references the model and optional diffuse texture an entity is
// drawn with. Handles are shared between entities.
type Mesh struct {
	Model          *Model
	DiffuseTexture *Texture // nil means the renderer's default white
}

// NewMesh returns an untextured mesh.
func NewMesh(model *Model) Mesh {
	return Mesh{Model: model}
}

// NewTexturedMesh returns a mesh with a diffuse texture.
func NewTexturedMesh(model *Model, texture *Texture) Mesh {
	return Mesh{Model: model, DiffuseTexture: texture}
}

// HasTexture reports whether a diffuse texture is set.
func (m Mesh) HasTexture() bool {
	return m.DiffuseTexture != nil
}
