package cube

// Face is an ordered inbound buffer for a single direction. Packets are
// appended by the sending neighbor and drained in FIFO order by the owning
// cube's flush. A Face carries no capacity bound of its own: overflow is
// accounted when packets move into the cube's bounded queue.
type Face struct {
	packets []Packet
}

// NewFace returns an empty Face.
func NewFace() *Face {
	return &Face{}
}

// Enqueue appends pkt to the buffer.
func (f *Face) Enqueue(pkt Packet) {
	f.packets = append(f.packets, pkt)
}

// Drain returns the buffered packets in arrival order and empties the Face.
func (f *Face) Drain() []Packet {
	pkts := f.packets
	f.packets = nil

	return pkts
}

// HasPacket reports whether the buffer is non-empty without draining it.
func (f *Face) HasPacket() bool {
	return len(f.packets) > 0
}

// Len returns the number of buffered packets.
func (f *Face) Len() int {
	return len(f.packets)
}

// Faces is a fixed collection of six Face slots indexed by Direction.
// A cube uses two instances: one holding its owned inbound Faces (every
// slot populated) and one holding references to neighbors' inbound Faces
// (slots nil where no neighbor is wired).
type Faces struct {
	slots [NumDirections]*Face
}

// NewFaces returns a Faces with an owned, empty Face in every slot.
func NewFaces() *Faces {
	fs := &Faces{}
	for _, d := range AllDirections {
		fs.slots[d] = NewFace()
	}

	return fs
}

// NewFaceRefs returns a Faces with every slot empty, for use as a cube's
// neighbor-reference set.
func NewFaceRefs() *Faces {
	return &Faces{}
}

// Face returns the Face in direction d, or nil if the slot is unset.
func (fs *Faces) Face(d Direction) *Face {
	return fs.slots[d]
}

// SetFace installs f in slot d. Passing nil clears the slot.
func (fs *Faces) SetFace(d Direction, f *Face) {
	fs.slots[d] = f
}

// AddPacket enqueues pkt into the Face in direction d. Returns false when
// the slot is unset (no neighbor wired on that side).
func (fs *Faces) AddPacket(d Direction, pkt Packet) bool {
	f := fs.slots[d]
	if f == nil {
		return false
	}
	f.Enqueue(pkt)

	return true
}

// HasPacket reports whether any populated slot holds a packet.
func (fs *Faces) HasPacket() bool {
	for _, f := range fs.slots {
		if f != nil && f.HasPacket() {
			return true
		}
	}

	return false
}
