package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/x448/float16"

	"github.com/p-sodmann/ironweaver/pkg/graph"
	"github.com/p-sodmann/ironweaver/pkg/value"
)

// Binary container layout, all integers big-endian:
//
//	magic   "IWGB"
//	version u16
//	flags   u8 (bit 0: floats stored as IEEE 754 half precision)
//	meta, metadata, nodes, edges as length-prefixed tables
//
// Strings are u32 length + UTF-8 bytes. Values are a tag byte followed by
// the payload; lists and dicts nest recursively.
var (
	// ErrBadMagic means the input does not start with the container magic.
	ErrBadMagic = errors.New("codec: not an ironweaver binary graph")

	// ErrUnsupportedVersion means the container was written by a newer
	// format revision than this package understands.
	ErrUnsupportedVersion = errors.New("codec: unsupported binary format version")
)

const (
	binaryMagic   = "IWGB"
	binaryVersion = uint16(1)

	flagFloat16 = uint8(1 << 0)
)

const (
	tagNull   = uint8(0)
	tagString = uint8(1)
	tagInt    = uint8(2)
	tagFloat  = uint8(3)
	tagBool   = uint8(4)
	tagList   = uint8(5)
	tagDict   = uint8(6)
)

// EncodeBinary serializes the graph into the binary container. When f16 is
// set, float values are narrowed to half precision before writing; the flag
// is recorded in the header so decoding widens them back transparently.
func EncodeBinary(g *graph.Graph, f16 bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := &binaryEncoder{w: &buf, f16: f16}
	if err := enc.encodeGraph(FromGraph(g)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBinary reconstructs a graph from the binary container.
func DecodeBinary(data []byte) (*graph.Graph, error) {
	dec := &binaryDecoder{r: bufio.NewReader(bytes.NewReader(data)), limit: len(data)}
	sg, err := dec.decodeGraph()
	if err != nil {
		return nil, err
	}
	return sg.ToGraph()
}

// SaveBinary writes the graph to path in the binary container format.
func SaveBinary(g *graph.Graph, path string) error {
	return saveBinary(g, path, false)
}

// SaveBinaryF16 writes the graph with floats narrowed to half precision.
// The narrowing is lossy; it trades precision for roughly half the float
// payload, which matters for attribute-heavy embedding graphs.
func SaveBinaryF16(g *graph.Graph, path string) error {
	return saveBinary(g, path, true)
}

func saveBinary(g *graph.Graph, path string, f16 bool) error {
	data, err := EncodeBinary(g, f16)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	return nil
}

// LoadBinaryFile reads a graph from a binary container on disk.
func LoadBinaryFile(path string) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}
	return DecodeBinary(data)
}

type binaryEncoder struct {
	w   io.Writer
	f16 bool
}

func (e *binaryEncoder) encodeGraph(sg *Graph) error {
	if _, err := e.w.Write([]byte(binaryMagic)); err != nil {
		return err
	}
	if err := binary.Write(e.w, binary.BigEndian, binaryVersion); err != nil {
		return err
	}
	flags := uint8(0)
	if e.f16 {
		flags |= flagFloat16
	}
	if err := binary.Write(e.w, binary.BigEndian, flags); err != nil {
		return err
	}

	if err := e.writeValueMap(sg.Meta); err != nil {
		return err
	}
	if err := e.writeValueMap(sg.Metadata); err != nil {
		return err
	}

	nodeIDs := sortedKeys(sg.Nodes)
	if err := e.writeCount(len(nodeIDs)); err != nil {
		return err
	}
	for _, id := range nodeIDs {
		if err := e.writeNode(sg.Nodes[id]); err != nil {
			return err
		}
	}

	edgeIDs := sortedKeys(sg.Edges)
	if err := e.writeCount(len(edgeIDs)); err != nil {
		return err
	}
	for _, id := range edgeIDs {
		if err := e.writeEdge(sg.Edges[id]); err != nil {
			return err
		}
	}
	return nil
}

func (e *binaryEncoder) writeNode(n Node) error {
	if err := e.writeString(n.ID); err != nil {
		return err
	}
	if err := e.writeValueMap(n.Attr); err != nil {
		return err
	}
	if err := e.writeValueMap(n.Meta); err != nil {
		return err
	}
	if err := e.writeStringSlice(n.EdgeIDs); err != nil {
		return err
	}
	return e.writeStringSlice(n.InverseEdgeIDs)
}

func (e *binaryEncoder) writeEdge(ed Edge) error {
	for _, s := range []string{ed.ID, ed.FromID, ed.ToID} {
		if err := e.writeString(s); err != nil {
			return err
		}
	}
	if err := e.writeValueMap(ed.Attr); err != nil {
		return err
	}
	return e.writeValueMap(ed.Meta)
}

func (e *binaryEncoder) writeValue(v value.Value) error {
	switch v.Kind() {
	case value.KindNull:
		return e.writeTag(tagNull)
	case value.KindString:
		if err := e.writeTag(tagString); err != nil {
			return err
		}
		s, _ := v.AsString()
		return e.writeString(s)
	case value.KindInt:
		if err := e.writeTag(tagInt); err != nil {
			return err
		}
		n, _ := v.AsInt()
		return binary.Write(e.w, binary.BigEndian, n)
	case value.KindFloat:
		if err := e.writeTag(tagFloat); err != nil {
			return err
		}
		f, _ := v.AsFloat()
		if e.f16 {
			return binary.Write(e.w, binary.BigEndian, float16.Fromfloat32(float32(f)).Bits())
		}
		return binary.Write(e.w, binary.BigEndian, math.Float64bits(f))
	case value.KindBool:
		if err := e.writeTag(tagBool); err != nil {
			return err
		}
		b, _ := v.AsBool()
		var payload uint8
		if b {
			payload = 1
		}
		return binary.Write(e.w, binary.BigEndian, payload)
	case value.KindList:
		if err := e.writeTag(tagList); err != nil {
			return err
		}
		items, _ := v.AsList()
		if err := e.writeCount(len(items)); err != nil {
			return err
		}
		for _, item := range items {
			if err := e.writeValue(item); err != nil {
				return err
			}
		}
		return nil
	case value.KindMap:
		if err := e.writeTag(tagDict); err != nil {
			return err
		}
		m, _ := v.AsMap()
		return e.writeValueMap(m)
	default:
		return fmt.Errorf("codec: unknown value kind %v", v.Kind())
	}
}

func (e *binaryEncoder) writeValueMap(m map[string]value.Value) error {
	keys := sortedKeys(m)
	if err := e.writeCount(len(keys)); err != nil {
		return err
	}
	for _, k := range keys {
		if err := e.writeString(k); err != nil {
			return err
		}
		if err := e.writeValue(m[k]); err != nil {
			return err
		}
	}
	return nil
}

func (e *binaryEncoder) writeStringSlice(ss []string) error {
	if err := e.writeCount(len(ss)); err != nil {
		return err
	}
	for _, s := range ss {
		if err := e.writeString(s); err != nil {
			return err
		}
	}
	return nil
}

func (e *binaryEncoder) writeString(s string) error {
	if err := e.writeCount(len(s)); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, s)
	return err
}

func (e *binaryEncoder) writeCount(n int) error {
	return binary.Write(e.w, binary.BigEndian, uint32(n))
}

func (e *binaryEncoder) writeTag(t uint8) error {
	return binary.Write(e.w, binary.BigEndian, t)
}

type binaryDecoder struct {
	r     *bufio.Reader
	f16   bool
	limit int
}

func (d *binaryDecoder) decodeGraph() (*Graph, error) {
	magic := make([]byte, len(binaryMagic))
	if _, err := io.ReadFull(d.r, magic); err != nil {
		return nil, ErrBadMagic
	}
	if string(magic) != binaryMagic {
		return nil, ErrBadMagic
	}
	var version uint16
	if err := binary.Read(d.r, binary.BigEndian, &version); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if version != binaryVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	var flags uint8
	if err := binary.Read(d.r, binary.BigEndian, &flags); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	d.f16 = flags&flagFloat16 != 0

	sg := &Graph{}
	var err error
	if sg.Meta, err = d.readValueMap(); err != nil {
		return nil, err
	}
	if sg.Metadata, err = d.readValueMap(); err != nil {
		return nil, err
	}

	nodeCount, err := d.readCount()
	if err != nil {
		return nil, err
	}
	sg.Nodes = make(map[string]Node, nodeCount)
	for i := 0; i < nodeCount; i++ {
		n, err := d.readNode()
		if err != nil {
			return nil, err
		}
		sg.Nodes[n.ID] = n
	}

	edgeCount, err := d.readCount()
	if err != nil {
		return nil, err
	}
	sg.Edges = make(map[string]Edge, edgeCount)
	for i := 0; i < edgeCount; i++ {
		ed, err := d.readEdge()
		if err != nil {
			return nil, err
		}
		sg.Edges[ed.ID] = ed
	}
	return sg, nil
}

func (d *binaryDecoder) readNode() (Node, error) {
	var n Node
	var err error
	if n.ID, err = d.readString(); err != nil {
		return n, err
	}
	if n.Attr, err = d.readValueMap(); err != nil {
		return n, err
	}
	if n.Meta, err = d.readValueMap(); err != nil {
		return n, err
	}
	if n.EdgeIDs, err = d.readStringSlice(); err != nil {
		return n, err
	}
	n.InverseEdgeIDs, err = d.readStringSlice()
	return n, err
}

func (d *binaryDecoder) readEdge() (Edge, error) {
	var ed Edge
	var err error
	if ed.ID, err = d.readString(); err != nil {
		return ed, err
	}
	if ed.FromID, err = d.readString(); err != nil {
		return ed, err
	}
	if ed.ToID, err = d.readString(); err != nil {
		return ed, err
	}
	if ed.Attr, err = d.readValueMap(); err != nil {
		return ed, err
	}
	ed.Meta, err = d.readValueMap()
	return ed, err
}

func (d *binaryDecoder) readValue() (value.Value, error) {
	tag, err := d.r.ReadByte()
	if err != nil {
		return value.NullVal(), fmt.Errorf("read value tag: %w", err)
	}
	switch tag {
	case tagNull:
		return value.NullVal(), nil
	case tagString:
		s, err := d.readString()
		if err != nil {
			return value.NullVal(), err
		}
		return value.StringVal(s), nil
	case tagInt:
		var n int64
		if err := binary.Read(d.r, binary.BigEndian, &n); err != nil {
			return value.NullVal(), fmt.Errorf("read int value: %w", err)
		}
		return value.IntVal(n), nil
	case tagFloat:
		if d.f16 {
			var bits uint16
			if err := binary.Read(d.r, binary.BigEndian, &bits); err != nil {
				return value.NullVal(), fmt.Errorf("read float value: %w", err)
			}
			return value.FloatVal(float64(float16.Frombits(bits).Float32())), nil
		}
		var bits uint64
		if err := binary.Read(d.r, binary.BigEndian, &bits); err != nil {
			return value.NullVal(), fmt.Errorf("read float value: %w", err)
		}
		return value.FloatVal(math.Float64frombits(bits)), nil
	case tagBool:
		b, err := d.r.ReadByte()
		if err != nil {
			return value.NullVal(), fmt.Errorf("read bool value: %w", err)
		}
		return value.BoolVal(b != 0), nil
	case tagList:
		count, err := d.readCount()
		if err != nil {
			return value.NullVal(), err
		}
		items := make([]value.Value, 0, count)
		for i := 0; i < count; i++ {
			item, err := d.readValue()
			if err != nil {
				return value.NullVal(), err
			}
			items = append(items, item)
		}
		return value.ListVal(items...), nil
	case tagDict:
		m, err := d.readValueMap()
		if err != nil {
			return value.NullVal(), err
		}
		return value.MapVal(m), nil
	default:
		return value.NullVal(), fmt.Errorf("codec: unknown value tag %d", tag)
	}
}

func (d *binaryDecoder) readValueMap() (map[string]value.Value, error) {
	count, err := d.readCount()
	if err != nil {
		return nil, err
	}
	m := make(map[string]value.Value, count)
	for i := 0; i < count; i++ {
		k, err := d.readString()
		if err != nil {
			return nil, err
		}
		v, err := d.readValue()
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

func (d *binaryDecoder) readStringSlice() ([]string, error) {
	count, err := d.readCount()
	if err != nil {
		return nil, err
	}
	ss := make([]string, 0, count)
	for i := 0; i < count; i++ {
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		ss = append(ss, s)
	}
	return ss, nil
}

func (d *binaryDecoder) readString() (string, error) {
	n, err := d.readCount()
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return "", fmt.Errorf("read string: %w", err)
	}
	return string(buf), nil
}

// readCount reads a u32 length prefix. Every length-prefixed element takes
// at least one input byte, so any prefix exceeding the total input size is
// corrupt; rejecting it here keeps a truncated or malicious file from
// demanding a multi-gigabyte allocation before the first content byte is
// read.
func (d *binaryDecoder) readCount() (int, error) {
	var n uint32
	if err := binary.Read(d.r, binary.BigEndian, &n); err != nil {
		return 0, fmt.Errorf("read length: %w", err)
	}
	if int64(n) > int64(d.limit) {
		return 0, fmt.Errorf("codec: length %d exceeds input size %d", n, d.limit)
	}
	return int(n), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
