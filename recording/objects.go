package recording

import "github.com/gogpu/glstate/gl"

// ObjectKind identifies the type of a created object.
type ObjectKind uint8

const (
	KindBuffer ObjectKind = iota + 1
	KindFramebuffer
	KindRenderbuffer
	KindProgram
	KindVertexArray
)

var objectKindNames = [...]string{
	KindBuffer:       "Buffer",
	KindFramebuffer:  "Framebuffer",
	KindRenderbuffer: "Renderbuffer",
	KindProgram:      "Program",
	KindVertexArray:  "VertexArray",
}

func (k ObjectKind) String() string {
	if k > 0 && int(k) < len(objectKindNames) {
		return objectKindNames[k]
	}
	return "Unknown"
}

// Object is a resource created on a Context. It implements gl.Object so it
// can be passed wherever a binding handle is expected. A nil *Object is the
// null binding.
type Object struct {
	kind   ObjectKind
	handle gl.Handle
}

// Handle returns the object's binding handle.
func (o *Object) Handle() gl.Handle {
	if o == nil {
		return gl.NoHandle
	}
	return o.handle
}

// Kind returns the object type.
func (o *Object) Kind() ObjectKind { return o.kind }

func (c *Context) create(kind ObjectKind) *Object {
	h := c.nextHandle
	c.nextHandle++
	c.objects[h] = kind
	return &Object{kind: kind, handle: h}
}

func (c *Context) CreateBuffer() *Object       { return c.create(KindBuffer) }
func (c *Context) CreateFramebuffer() *Object  { return c.create(KindFramebuffer) }
func (c *Context) CreateRenderbuffer() *Object { return c.create(KindRenderbuffer) }
func (c *Context) CreateProgram() *Object      { return c.create(KindProgram) }

// CreateVertexArray returns nil on a baseline context.
func (c *Context) CreateVertexArray() *Object {
	if !c.extended {
		return nil
	}
	return c.create(KindVertexArray)
}

// validObject reports whether h is the null handle or an object of kind.
func (c *Context) validObject(h gl.Handle, kind ObjectKind) bool {
	if h == gl.NoHandle {
		return true
	}
	k, ok := c.objects[h]
	return ok && k == kind
}
