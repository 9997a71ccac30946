package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opaq.dev/pkg/opaq/internal/adapter"
	m "opaq.dev/pkg/opaq/internal/model"
)

func newTestObfuscator() (Obfuscator, adapter.ModuleCodec) {
	fs := adapter.NewLocalArtifactFS()
	codec := adapter.NewCBORModuleCodec(fs)

	return NewObfuscator(fs, codec, NewOpaquePredicateInjector(), ""), codec
}

func writeModule(t *testing.T, codec adapter.ModuleCodec, path string, module *m.Module) m.Path {
	t.Helper()
	require.NoError(t, codec.Save(m.Path(path), module))

	return m.Path(path)
}

func TestObfuscator_ObfuscateModule(t *testing.T) {
	obf, codec := newTestObfuscator()
	dir := t.TempDir()
	out := m.Path(filepath.Join(dir, "out"))

	input := writeModule(t, codec, filepath.Join(dir, "bin", "Tree.dll"), treeModule())

	result, err := obf.ObfuscateModule(context.Background(), input, out)
	require.NoError(t, err)

	assert.Equal(t, m.StatusObfuscated, result.Status)
	assert.Equal(t, m.Path(filepath.Join(string(out), DefaultAssembliesDir, "Tree.dll")), result.Output)
	assert.Equal(t, 5, result.Types)
	assert.Equal(t, 4, result.Methods)
	assert.Equal(t, 3, result.Skipped)
	assert.Len(t, result.SHA256, 64)

	rewritten, err := codec.Load(result.Output)
	require.NoError(t, err)

	for _, method := range EligibleMethods(rewritten) {
		assert.Len(t, method.Body.Instructions, 2+GuardLength, method.FullName())
		assert.Len(t, method.Body.Locals, 1)
		assert.Equal(t, m.LdcI40, method.Body.Instructions[0].OpCode)
	}

	// The input is left untouched.
	original, err := codec.Load(input)
	require.NoError(t, err)
	assert.Len(t, EligibleMethods(original)[0].Body.Instructions, 2)
}

func TestObfuscator_ReproducibleOutput(t *testing.T) {
	obf, codec := newTestObfuscator()
	dir := t.TempDir()
	input := writeModule(t, codec, filepath.Join(dir, "Tree.dll"), treeModule())

	first, err := obf.ObfuscateModule(context.Background(), input, m.Path(filepath.Join(dir, "a")))
	require.NoError(t, err)

	second, err := obf.ObfuscateModule(context.Background(), input, m.Path(filepath.Join(dir, "b")))
	require.NoError(t, err)

	a, err := os.ReadFile(string(first.Output))
	require.NoError(t, err)
	b, err := os.ReadFile(string(second.Output))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, first.SHA256, second.SHA256)
}

func TestObfuscator_RejectedMethodWritesNothing(t *testing.T) {
	fs := adapter.NewLocalArtifactFS()
	codec := adapter.NewCBORModuleCodec(fs)
	dir := t.TempDir()
	out := filepath.Join(dir, "out")

	module := treeModule()
	broken := m.NewTypeDef("N", "Broken")
	broken.AddMethod(&m.Method{Name: "Bad", Body: bodyOf(m.Nop, m.Ret)})
	module.Types = append(module.Types, broken)

	input := writeModule(t, codec, filepath.Join(dir, "Broken.dll"), module)

	obf := NewObfuscator(fs, codec, &failOnInjector{name: "Bad"}, "")
	result, err := obf.ObfuscateModule(context.Background(), input, m.Path(out))

	var malformed *MalformedBodyError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, m.StatusFailed, result.Status)
	assert.Empty(t, result.Output)
	assert.Contains(t, result.Error, "N.Broken::Bad")

	_, statErr := os.Stat(filepath.Join(out, DefaultAssembliesDir, "Broken.dll"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestObfuscator_ObfuscateModules_PartialFailure(t *testing.T) {
	obf, codec := newTestObfuscator()
	dir := t.TempDir()
	out := m.Path(filepath.Join(dir, "out"))

	first := writeModule(t, codec, filepath.Join(dir, "One.dll"), treeModule())
	missing := m.Path(filepath.Join(dir, "Missing.dll"))
	third := writeModule(t, codec, filepath.Join(dir, "Three.dll"), treeModule())

	batch, err := obf.ObfuscateModules(context.Background(), []m.Path{first, missing, third}, out)
	require.NoError(t, err)

	require.Len(t, batch.Results, 3)
	assert.Equal(t, m.StatusObfuscated, batch.Results[0].Status)
	assert.Equal(t, m.StatusMissing, batch.Results[1].Status)
	assert.Equal(t, m.StatusObfuscated, batch.Results[2].Status)

	require.NotNil(t, batch.Errors)
	require.Len(t, batch.Errors.Errors, 1)

	var missingErr *MissingInputError
	require.ErrorAs(t, batch.Errors, &missingErr)
	assert.Equal(t, missing, missingErr.Path)

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(string(out), DefaultAssembliesDir, "One.dll")),
		m.Path(filepath.Join(string(out), DefaultAssembliesDir, "Three.dll")),
	}, batch.Outputs())
}

func TestObfuscator_ObfuscateModules_NothingWritten(t *testing.T) {
	obf, _ := newTestObfuscator()
	dir := t.TempDir()

	batch, err := obf.ObfuscateModules(context.Background(), nil, m.Path(dir))
	require.ErrorIs(t, err, ErrNoModulesObfuscated)
	assert.Empty(t, batch.Results)

	garbage := filepath.Join(dir, "garbage.dll")
	require.NoError(t, os.WriteFile(garbage, []byte("MZ\x90\x00"), 0o644))

	batch, err = obf.ObfuscateModules(context.Background(), []m.Path{m.Path(garbage)}, m.Path(dir))
	require.ErrorIs(t, err, ErrNoModulesObfuscated)
	require.Len(t, batch.Results, 1)
	assert.Equal(t, m.StatusFailed, batch.Results[0].Status)
	assert.ErrorIs(t, batch.Errors, adapter.ErrInvalidModuleImage)
}

func TestObfuscator_CustomAssembliesDir(t *testing.T) {
	fs := adapter.NewLocalArtifactFS()
	codec := adapter.NewCBORModuleCodec(fs)
	obf := NewObfuscator(fs, codec, NewOpaquePredicateInjector(), "bin-obf")
	dir := t.TempDir()

	input := writeModule(t, codec, filepath.Join(dir, "Tree.dll"), treeModule())

	result, err := obf.ObfuscateModule(context.Background(), input, m.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(dir, "bin-obf", "Tree.dll")), result.Output)
}

func TestObfuscator_CanceledContext(t *testing.T) {
	obf, codec := newTestObfuscator()
	dir := t.TempDir()
	input := writeModule(t, codec, filepath.Join(dir, "Tree.dll"), treeModule())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := obf.ObfuscateModules(ctx, []m.Path{input}, m.Path(dir))
	assert.ErrorIs(t, err, context.Canceled)
}

// failOnInjector rejects one method by name and transforms the rest.
type failOnInjector struct {
	name string
}

func (f *failOnInjector) Inject(method *m.Method) error {
	if method.Name == f.name {
		return &MalformedBodyError{Method: method.FullName(), Reason: errors.New("rejected")}
	}

	return InsertOpaquePredicate(method)
}
