package object

import "fmt"

// Buffers is a renderer-owned GPU resource holding an object's mesh.
type Buffers interface {
	Draw()
	Delete()
}

// Uploader is the rendering context objects draw through. It creates GPU buffers
// from interleaved pos+normal vertices and triangle indices.
type Uploader interface {
	Upload(vertices []float32, indices []uint32) (Buffers, error)
}

// Draw issues the object's draw call, uploading its buffers on first use.
func (o *Object) Draw(up Uploader) error {
	if o.buffers == nil {
		b, err := up.Upload(o.Vertices, o.Indices)
		if err != nil {
			return fmt.Errorf("upload %s %q: %w", o.Kind, o.Name, err)
		}
		o.buffers = b
	}
	o.buffers.Draw()
	return nil
}

// Uploaded reports whether the object currently holds GPU buffers
func (o *Object) Uploaded() bool {
	return o.buffers != nil
}

// Cleanup releases the object's GPU buffers. Calling it again is a no-op.
func (o *Object) Cleanup() {
	if o.buffers == nil {
		return
	}
	o.buffers.Delete()
	o.buffers = nil
}
