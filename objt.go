package clovy

// Action is one compiled action attached to an Event.
type Action struct {
	LibID       int32
	ID          int32
	Kind        int32
	HasRelative bool
	IsQuestion  bool
	HasTarget   bool
	ActionKind  int32
	Name        []byte
	CodeID      int32
	ArgumentCount int32
	Who         int32
	Relative    bool
	IsNot       bool
	UnknownID   int32
}

func decodeAction(r *Reader) (Action, error) {
	var a Action
	var err error
	if a.LibID, err = r.ReadI32(); err != nil {
		return a, err
	}
	if a.ID, err = r.ReadI32(); err != nil {
		return a, err
	}
	if a.Kind, err = r.ReadI32(); err != nil {
		return a, err
	}
	if a.HasRelative, err = r.ReadWideBool(); err != nil {
		return a, err
	}
	if a.IsQuestion, err = r.ReadWideBool(); err != nil {
		return a, err
	}
	if a.HasTarget, err = r.ReadWideBool(); err != nil {
		return a, err
	}
	if a.ActionKind, err = r.ReadI32(); err != nil {
		return a, err
	}
	if a.Name, err = r.ReadPointerString(false); err != nil {
		return a, err
	}
	if a.CodeID, err = r.ReadI32(); err != nil {
		return a, err
	}
	if a.ArgumentCount, err = r.ReadI32(); err != nil {
		return a, err
	}
	if a.Who, err = r.ReadI32(); err != nil {
		return a, err
	}
	if a.Relative, err = r.ReadWideBool(); err != nil {
		return a, err
	}
	if a.IsNot, err = r.ReadWideBool(); err != nil {
		return a, err
	}
	if a.UnknownID, err = r.ReadI32(); err != nil {
		return a, err
	}
	return a, nil
}

func encodeAction(w *Writer, a Action) error {
	if err := w.WriteI32(a.LibID); err != nil {
		return err
	}
	if err := w.WriteI32(a.ID); err != nil {
		return err
	}
	if err := w.WriteI32(a.Kind); err != nil {
		return err
	}
	if err := w.WriteWideBool(a.HasRelative); err != nil {
		return err
	}
	if err := w.WriteWideBool(a.IsQuestion); err != nil {
		return err
	}
	if err := w.WriteWideBool(a.HasTarget); err != nil {
		return err
	}
	if err := w.WriteI32(a.ActionKind); err != nil {
		return err
	}
	if err := w.WritePointerString(a.Name); err != nil {
		return err
	}
	if err := w.WriteI32(a.CodeID); err != nil {
		return err
	}
	if err := w.WriteI32(a.ArgumentCount); err != nil {
		return err
	}
	if err := w.WriteI32(a.Who); err != nil {
		return err
	}
	if err := w.WriteWideBool(a.Relative); err != nil {
		return err
	}
	if err := w.WriteWideBool(a.IsNot); err != nil {
		return err
	}
	return w.WriteI32(a.UnknownID)
}

// Event is one event record: a subtype discriminator and its actions.
type Event struct {
	Subtype int32
	Actions []Action
}

func decodeEvent(r *Reader) (Event, error) {
	var e Event
	var err error
	if e.Subtype, err = r.ReadI32(); err != nil {
		return e, err
	}
	if e.Actions, err = DecodePointerList(r, decodeAction, nil); err != nil {
		return e, err
	}
	return e, nil
}

func encodeEvent(w *Writer, e Event) error {
	if err := w.WriteI32(e.Subtype); err != nil {
		return err
	}
	return EncodePointerList(w, e.Actions, encodeAction, nil)
}

// decodeEventList/encodeEventList decode/encode the inner PL<Event> of the
// two-level PL<PL<Event>> Object (and Timeline) events use.
func decodeEventList(r *Reader) ([]Event, error) {
	return DecodePointerList(r, decodeEvent, nil)
}

func encodeEventList(w *Writer, events []Event) error {
	return EncodePointerList(w, events, encodeEvent, nil)
}

// PhysicsVertex is one point of a PhysicsProperties collision shape.
type PhysicsVertex struct {
	X, Y float32
}

func decodePhysicsVertex(r *Reader) (PhysicsVertex, error) {
	var v PhysicsVertex
	var err error
	if v.X, err = r.ReadF32(); err != nil {
		return v, err
	}
	if v.Y, err = r.ReadF32(); err != nil {
		return v, err
	}
	return v, nil
}

func encodePhysicsVertex(w *Writer, v PhysicsVertex) error {
	if err := w.WriteF32(v.X); err != nil {
		return err
	}
	return w.WriteF32(v.Y)
}

// PhysicsProperties holds an Object's physics-simulation fields. Notably,
// vertex count is read before the other scalar fields but the vertices
// themselves are read last — the count and payload are not adjacent on
// disk, per spec.md §3.
type PhysicsProperties struct {
	VertexCount  int32
	Enabled      bool
	Sensor       bool
	ShapeKind    int32
	Density      float32
	Restitution  float32
	Group        int32
	LinearDamping float32
	AngularDamping float32
	Friction     float32
	Awake        bool
	Kinematic    bool
	Vertices     []PhysicsVertex
}

func decodePhysicsProperties(r *Reader) (*PhysicsProperties, error) {
	p := &PhysicsProperties{}
	var err error
	if p.VertexCount, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if p.Enabled, err = r.ReadWideBool(); err != nil {
		return nil, err
	}
	if p.Sensor, err = r.ReadWideBool(); err != nil {
		return nil, err
	}
	if p.ShapeKind, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if p.Density, err = r.ReadF32(); err != nil {
		return nil, err
	}
	if p.Restitution, err = r.ReadF32(); err != nil {
		return nil, err
	}
	if p.Group, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if p.LinearDamping, err = r.ReadF32(); err != nil {
		return nil, err
	}
	if p.AngularDamping, err = r.ReadF32(); err != nil {
		return nil, err
	}
	if p.Friction, err = r.ReadF32(); err != nil {
		return nil, err
	}
	if p.Awake, err = r.ReadWideBool(); err != nil {
		return nil, err
	}
	if p.Kinematic, err = r.ReadWideBool(); err != nil {
		return nil, err
	}
	p.Vertices = make([]PhysicsVertex, p.VertexCount)
	for i := range p.Vertices {
		if p.Vertices[i], err = decodePhysicsVertex(r); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func encodePhysicsProperties(w *Writer, p *PhysicsProperties) error {
	if err := w.WriteI32(int32(len(p.Vertices))); err != nil {
		return err
	}
	if err := w.WriteWideBool(p.Enabled); err != nil {
		return err
	}
	if err := w.WriteWideBool(p.Sensor); err != nil {
		return err
	}
	if err := w.WriteI32(p.ShapeKind); err != nil {
		return err
	}
	if err := w.WriteF32(p.Density); err != nil {
		return err
	}
	if err := w.WriteF32(p.Restitution); err != nil {
		return err
	}
	if err := w.WriteI32(p.Group); err != nil {
		return err
	}
	if err := w.WriteF32(p.LinearDamping); err != nil {
		return err
	}
	if err := w.WriteF32(p.AngularDamping); err != nil {
		return err
	}
	if err := w.WriteF32(p.Friction); err != nil {
		return err
	}
	if err := w.WriteWideBool(p.Awake); err != nil {
		return err
	}
	if err := w.WriteWideBool(p.Kinematic); err != nil {
		return err
	}
	for _, v := range p.Vertices {
		if err := encodePhysicsVertex(w, v); err != nil {
			return err
		}
	}
	return nil
}

// Object is one OBJT entry.
type Object struct {
	Name            []byte
	SpriteID        int32
	Visible         bool
	Solid           bool
	Depth           int32
	Persistent      bool
	ParentObjectID  int32
	MaskSpriteID    int32
	HasPhysics      bool
	Physics         *PhysicsProperties
	Events          [][]Event
}

func decodeObject(r *Reader) (Object, error) {
	var o Object
	var err error
	if o.Name, err = r.ReadPointerString(false); err != nil {
		return o, err
	}
	if o.SpriteID, err = r.ReadI32(); err != nil {
		return o, err
	}
	if o.Visible, err = r.ReadWideBool(); err != nil {
		return o, err
	}
	if o.Solid, err = r.ReadWideBool(); err != nil {
		return o, err
	}
	if o.Depth, err = r.ReadI32(); err != nil {
		return o, err
	}
	if o.Persistent, err = r.ReadWideBool(); err != nil {
		return o, err
	}
	if o.ParentObjectID, err = r.ReadI32(); err != nil {
		return o, err
	}
	if o.MaskSpriteID, err = r.ReadI32(); err != nil {
		return o, err
	}
	if o.HasPhysics, err = r.ReadWideBool(); err != nil {
		return o, err
	}
	if o.HasPhysics {
		if o.Physics, err = decodePhysicsProperties(r); err != nil {
			return o, err
		}
	}
	if o.Events, err = DecodePointerList(r, decodeEventList, nil); err != nil {
		return o, err
	}
	return o, nil
}

func encodeObject(w *Writer, o Object) error {
	if err := w.WritePointerString(o.Name); err != nil {
		return err
	}
	if err := w.WriteI32(o.SpriteID); err != nil {
		return err
	}
	if err := w.WriteWideBool(o.Visible); err != nil {
		return err
	}
	if err := w.WriteWideBool(o.Solid); err != nil {
		return err
	}
	if err := w.WriteI32(o.Depth); err != nil {
		return err
	}
	if err := w.WriteWideBool(o.Persistent); err != nil {
		return err
	}
	if err := w.WriteI32(o.ParentObjectID); err != nil {
		return err
	}
	if err := w.WriteI32(o.MaskSpriteID); err != nil {
		return err
	}
	if err := w.WriteWideBool(o.HasPhysics); err != nil {
		return err
	}
	if o.HasPhysics {
		if err := encodePhysicsProperties(w, o.Physics); err != nil {
			return err
		}
	}
	return EncodePointerList(w, o.Events, encodeEventList, nil)
}
