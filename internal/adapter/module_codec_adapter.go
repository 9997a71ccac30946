package adapter

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	m "opaq.dev/pkg/opaq/internal/model"
)

const moduleImageMagic = "OPAQMOD"

// ModuleImageFormat is the version of the module image layout this codec reads and writes.
const ModuleImageFormat = 1

// ErrInvalidModuleImage is returned when bytes do not decode to a module.
var ErrInvalidModuleImage = errors.New("invalid module image")

// ModuleCodec loads compiled modules into the object model and writes them back.
type ModuleCodec interface {
	Load(path m.Path) (*m.Module, error)
	Save(path m.Path, module *m.Module) error
	Encode(module *m.Module) ([]byte, error)
	Decode(data []byte) (*m.Module, error)
}

// cborEncMode uses canonical encoding so equal modules always produce
// byte-identical images.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("adapter: failed to create CBOR enc mode: %v", err))
	}

	cborEncMode = em
}

// CBORModuleCodec stores modules as CBOR images. Instruction identity is
// flattened to body-relative indexes on the wire and restored on load.
type CBORModuleCodec struct {
	fs ArtifactFS
}

// NewCBORModuleCodec constructs a codec reading and writing through fs.
func NewCBORModuleCodec(fs ArtifactFS) *CBORModuleCodec {
	return &CBORModuleCodec{fs: fs}
}

// Load reads and decodes the module image at path.
func (c *CBORModuleCodec) Load(path m.Path) (*m.Module, error) {
	data, err := c.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read module %s: %w", path, err)
	}

	module, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode module %s: %w", path, err)
	}

	return module, nil
}

// Save encodes module and writes it to path. Nothing is written when
// encoding fails.
func (c *CBORModuleCodec) Save(path m.Path, module *m.Module) error {
	data, err := c.Encode(module)
	if err != nil {
		return fmt.Errorf("encode module %s: %w", module.Name, err)
	}

	if err := c.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("write module %s: %w", path, err)
	}

	return nil
}

type operandTag uint8

const (
	operandNil operandTag = iota
	operandInt32
	operandInt64
	operandFloat64
	operandString
	operandToken
	operandLocal
	operandTarget
	operandTargets
)

type moduleImage struct {
	Magic   string      `cbor:"1,keyasint"`
	Format  uint        `cbor:"2,keyasint"`
	Name    string      `cbor:"3,keyasint"`
	Version string      `cbor:"4,keyasint,omitempty"`
	Types   []typeImage `cbor:"5,keyasint,omitempty"`
}

type typeImage struct {
	Namespace string        `cbor:"1,keyasint,omitempty"`
	Name      string        `cbor:"2,keyasint"`
	Methods   []methodImage `cbor:"3,keyasint,omitempty"`
	Nested    []typeImage   `cbor:"4,keyasint,omitempty"`
}

type methodImage struct {
	Name       string     `cbor:"1,keyasint"`
	Signature  string     `cbor:"2,keyasint,omitempty"`
	Attributes uint16     `cbor:"3,keyasint,omitempty"`
	Body       *bodyImage `cbor:"4,keyasint,omitempty"`
}

type bodyImage struct {
	InitLocals bool           `cbor:"1,keyasint,omitempty"`
	MaxStack   int            `cbor:"2,keyasint,omitempty"`
	Locals     []localImage   `cbor:"3,keyasint,omitempty"`
	Code       []instrImage   `cbor:"4,keyasint,omitempty"`
	Handlers   []handlerImage `cbor:"5,keyasint,omitempty"`
}

type localImage struct {
	Type string `cbor:"1,keyasint"`
	Name string `cbor:"2,keyasint,omitempty"`
}

type instrImage struct {
	Op      uint16     `cbor:"1,keyasint"`
	Tag     operandTag `cbor:"2,keyasint,omitempty"`
	Int     int64      `cbor:"3,keyasint,omitempty"`
	Float   float64    `cbor:"4,keyasint,omitempty"`
	Text    string     `cbor:"5,keyasint,omitempty"`
	Index   int        `cbor:"6,keyasint,omitempty"`
	Indexes []int      `cbor:"7,keyasint,omitempty"`
}

type handlerImage struct {
	Kind         string `cbor:"1,keyasint"`
	TryStart     int    `cbor:"2,keyasint"`
	TryEnd       int    `cbor:"3,keyasint"`
	HandlerStart int    `cbor:"4,keyasint"`
	HandlerEnd   int    `cbor:"5,keyasint"`
	CatchType    string `cbor:"6,keyasint,omitempty"`
}

// Encode serializes a module. Dangling branch targets or foreign locals are
// rejected rather than written.
func (c *CBORModuleCodec) Encode(module *m.Module) ([]byte, error) {
	if module == nil {
		return nil, errors.New("nil module")
	}

	image := moduleImage{
		Magic:   moduleImageMagic,
		Format:  ModuleImageFormat,
		Name:    module.Name,
		Version: module.Version,
	}

	for _, typ := range module.Types {
		encoded, err := encodeType(typ)
		if err != nil {
			return nil, err
		}

		image.Types = append(image.Types, encoded)
	}

	return cborEncMode.Marshal(image)
}

func encodeType(typ *m.TypeDef) (typeImage, error) {
	image := typeImage{Namespace: typ.Namespace, Name: typ.Name}

	for _, method := range typ.Methods {
		encoded, err := encodeMethod(method)
		if err != nil {
			return typeImage{}, fmt.Errorf("%s: %w", method.FullName(), err)
		}

		image.Methods = append(image.Methods, encoded)
	}

	for _, nested := range typ.Nested {
		encoded, err := encodeType(nested)
		if err != nil {
			return typeImage{}, err
		}

		image.Nested = append(image.Nested, encoded)
	}

	return image, nil
}

func encodeMethod(method *m.Method) (methodImage, error) {
	image := methodImage{
		Name:       method.Name,
		Signature:  method.Signature,
		Attributes: uint16(method.Attributes),
	}

	if method.Body == nil {
		return image, nil
	}

	body, err := encodeBody(method.Body)
	if err != nil {
		return methodImage{}, err
	}

	image.Body = body

	return image, nil
}

func encodeBody(body *m.Body) (*bodyImage, error) {
	image := &bodyImage{InitLocals: body.InitLocals, MaxStack: body.MaxStack}

	locals := make(map[*m.Local]int, len(body.Locals))
	for i, local := range body.Locals {
		if local == nil {
			return nil, fmt.Errorf("local slot %d is nil", i)
		}

		locals[local] = i
		image.Locals = append(image.Locals, localImage{Type: string(local.Type), Name: local.Name})
	}

	positions := make(map[*m.Instruction]int, len(body.Instructions))
	for i, instr := range body.Instructions {
		if instr == nil {
			return nil, fmt.Errorf("instruction %d is nil", i)
		}

		positions[instr] = i
	}

	for i, instr := range body.Instructions {
		encoded, err := encodeInstruction(instr, locals, positions)
		if err != nil {
			return nil, fmt.Errorf("instruction %d (%s): %w", i, instr.OpCode.Name, err)
		}

		image.Code = append(image.Code, encoded)
	}

	for i, handler := range body.Handlers {
		encoded, err := encodeHandler(handler, positions)
		if err != nil {
			return nil, fmt.Errorf("handler %d: %w", i, err)
		}

		image.Handlers = append(image.Handlers, encoded)
	}

	return image, nil
}

func encodeInstruction(instr *m.Instruction, locals map[*m.Local]int, positions map[*m.Instruction]int) (instrImage, error) {
	image := instrImage{Op: instr.OpCode.Value}

	switch operand := instr.Operand.(type) {
	case nil:
		image.Tag = operandNil
	case int32:
		image.Tag, image.Int = operandInt32, int64(operand)
	case int64:
		image.Tag, image.Int = operandInt64, operand
	case float64:
		image.Tag, image.Float = operandFloat64, operand
	case string:
		image.Tag, image.Text = operandString, operand
	case m.Token:
		image.Tag, image.Text = operandToken, string(operand)
	case *m.Local:
		index, ok := locals[operand]
		if !ok {
			return instrImage{}, errors.New("local outside the slot table")
		}

		image.Tag, image.Index = operandLocal, index
	case *m.Instruction:
		index, ok := positions[operand]
		if !ok {
			return instrImage{}, errors.New("branch target outside the body")
		}

		image.Tag, image.Index = operandTarget, index
	case []*m.Instruction:
		image.Tag = operandTargets
		image.Indexes = make([]int, 0, len(operand))

		for _, target := range operand {
			index, ok := positions[target]
			if !ok {
				return instrImage{}, errors.New("switch target outside the body")
			}

			image.Indexes = append(image.Indexes, index)
		}
	default:
		return instrImage{}, fmt.Errorf("unsupported operand type %T", operand)
	}

	return image, nil
}

func encodeHandler(handler *m.ExceptionHandler, positions map[*m.Instruction]int) (handlerImage, error) {
	if handler == nil {
		return handlerImage{}, errors.New("nil handler")
	}

	lookup := func(instr *m.Instruction) (int, error) {
		index, ok := positions[instr]
		if !ok {
			return 0, errors.New("boundary outside the body")
		}

		return index, nil
	}

	image := handlerImage{Kind: string(handler.Kind), CatchType: string(handler.CatchType), HandlerEnd: -1}

	var err error

	if image.TryStart, err = lookup(handler.TryStart); err != nil {
		return handlerImage{}, err
	}

	if image.TryEnd, err = lookup(handler.TryEnd); err != nil {
		return handlerImage{}, err
	}

	if image.HandlerStart, err = lookup(handler.HandlerStart); err != nil {
		return handlerImage{}, err
	}

	if handler.HandlerEnd != nil {
		if image.HandlerEnd, err = lookup(handler.HandlerEnd); err != nil {
			return handlerImage{}, err
		}
	}

	return image, nil
}

// Decode parses a module image and restores instruction identity.
func (c *CBORModuleCodec) Decode(data []byte) (*m.Module, error) {
	var image moduleImage
	if err := cbor.Unmarshal(data, &image); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModuleImage, err)
	}

	if image.Magic != moduleImageMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidModuleImage, image.Magic)
	}

	if image.Format != ModuleImageFormat {
		return nil, fmt.Errorf("%w: unsupported format %d", ErrInvalidModuleImage, image.Format)
	}

	module := &m.Module{Name: image.Name, Version: image.Version}

	for _, typ := range image.Types {
		decoded, err := decodeType(typ, nil)
		if err != nil {
			return nil, err
		}

		module.Types = append(module.Types, decoded)
	}

	return module, nil
}

func decodeType(image typeImage, declaring *m.TypeDef) (*m.TypeDef, error) {
	typ := m.NewTypeDef(image.Namespace, image.Name)
	typ.DeclaringType = declaring

	for _, methodImg := range image.Methods {
		method := &m.Method{
			Name:       methodImg.Name,
			Signature:  methodImg.Signature,
			Attributes: m.MethodAttributes(methodImg.Attributes),
		}

		if methodImg.Body != nil {
			body, err := decodeBody(methodImg.Body)
			if err != nil {
				return nil, fmt.Errorf("%w: %s::%s: %w", ErrInvalidModuleImage, typ.FullName(), method.Name, err)
			}

			method.Body = body
		}

		typ.AddMethod(method)
	}

	for _, nestedImg := range image.Nested {
		nested, err := decodeType(nestedImg, typ)
		if err != nil {
			return nil, err
		}

		typ.Nested = append(typ.Nested, nested)
	}

	return typ, nil
}

func decodeBody(image *bodyImage) (*m.Body, error) {
	body := &m.Body{InitLocals: image.InitLocals, MaxStack: image.MaxStack}

	for _, local := range image.Locals {
		slot := body.AddLocal(m.TypeRef(local.Type))
		slot.Name = local.Name
	}

	// Create every instruction first so forward branches can be resolved.
	body.Instructions = make([]*m.Instruction, len(image.Code))

	for i, code := range image.Code {
		op, err := m.OpCodeByValue(code.Op)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}

		body.Instructions[i] = &m.Instruction{OpCode: op}
	}

	for i, code := range image.Code {
		operand, err := decodeOperand(code, body)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}

		body.Instructions[i].Operand = operand
	}

	for i, handlerImg := range image.Handlers {
		handler, err := decodeHandler(handlerImg, body.Instructions)
		if err != nil {
			return nil, fmt.Errorf("handler %d: %w", i, err)
		}

		body.Handlers = append(body.Handlers, handler)
	}

	return body, nil
}

func decodeOperand(code instrImage, body *m.Body) (any, error) {
	instructionAt := func(index int) (*m.Instruction, error) {
		if index < 0 || index >= len(body.Instructions) {
			return nil, fmt.Errorf("branch target %d out of range", index)
		}

		return body.Instructions[index], nil
	}

	switch code.Tag {
	case operandNil:
		return nil, nil
	case operandInt32:
		return int32(code.Int), nil
	case operandInt64:
		return code.Int, nil
	case operandFloat64:
		return code.Float, nil
	case operandString:
		return code.Text, nil
	case operandToken:
		return m.Token(code.Text), nil
	case operandLocal:
		if code.Index < 0 || code.Index >= len(body.Locals) {
			return nil, fmt.Errorf("local %d out of range", code.Index)
		}

		return body.Locals[code.Index], nil
	case operandTarget:
		return instructionAt(code.Index)
	case operandTargets:
		targets := make([]*m.Instruction, 0, len(code.Indexes))

		for _, index := range code.Indexes {
			target, err := instructionAt(index)
			if err != nil {
				return nil, err
			}

			targets = append(targets, target)
		}

		return targets, nil
	}

	return nil, fmt.Errorf("unknown operand tag %d", code.Tag)
}

func decodeHandler(image handlerImage, code []*m.Instruction) (*m.ExceptionHandler, error) {
	at := func(index int) (*m.Instruction, error) {
		if index < 0 || index >= len(code) {
			return nil, fmt.Errorf("boundary %d out of range", index)
		}

		return code[index], nil
	}

	handler := &m.ExceptionHandler{Kind: m.HandlerKind(image.Kind), CatchType: m.TypeRef(image.CatchType)}

	var err error

	if handler.TryStart, err = at(image.TryStart); err != nil {
		return nil, err
	}

	if handler.TryEnd, err = at(image.TryEnd); err != nil {
		return nil, err
	}

	if handler.HandlerStart, err = at(image.HandlerStart); err != nil {
		return nil, err
	}

	if image.HandlerEnd >= 0 {
		if handler.HandlerEnd, err = at(image.HandlerEnd); err != nil {
			return nil, err
		}
	}

	return handler, nil
}
