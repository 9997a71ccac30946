package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"opaq.dev/pkg/opaq/internal/adapter"
	adaptermocks "opaq.dev/pkg/opaq/internal/adapter/mocks"
	controllermocks "opaq.dev/pkg/opaq/internal/controller/mocks"
	"opaq.dev/pkg/opaq/internal/domain"
	domainmocks "opaq.dev/pkg/opaq/internal/domain/mocks"
	m "opaq.dev/pkg/opaq/internal/model"
)

type workflowFixture struct {
	dir         string
	solution    m.Path
	out         m.Path
	lister      *adaptermocks.MockProjectLister
	buildTool   *adaptermocks.MockBuildTool
	decompiler  *adaptermocks.MockDecompiler
	reportStore *adaptermocks.MockReportStore
	ui          *controllermocks.MockUI
	obfuscator  *domainmocks.MockObfuscator
	workflow    domain.Workflow
}

// newWorkflowFixture lays out <dir>/App.sln and <dir>/src/App/App.csproj and
// wires the workflow to mocks. Display calls are always permitted.
func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	dir := t.TempDir()
	solution := filepath.Join(dir, "App.sln")
	require.NoError(t, os.WriteFile(solution, []byte("Global\nEndGlobal\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "App"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "App", "App.csproj"), []byte("<Project/>"), 0o644))

	fs := adapter.NewLocalArtifactFS()

	f := &workflowFixture{
		dir:         dir,
		solution:    m.Path(solution),
		out:         m.Path(filepath.Join(dir, "obf")),
		lister:      adaptermocks.NewMockProjectLister(t),
		buildTool:   adaptermocks.NewMockBuildTool(t),
		decompiler:  adaptermocks.NewMockDecompiler(t),
		reportStore: adaptermocks.NewMockReportStore(t),
		ui:          controllermocks.NewMockUI(t),
		obfuscator:  domainmocks.NewMockObfuscator(t),
	}

	f.ui.EXPECT().DisplayStage(mock.Anything, mock.Anything).Return().Maybe()
	f.ui.EXPECT().DisplayWarning(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	f.ui.EXPECT().DisplayModuleResult(mock.Anything, mock.Anything).Return().Maybe()
	f.ui.EXPECT().DisplayDecompileResult(mock.Anything, mock.Anything).Return().Maybe()

	f.workflow = domain.NewWorkflow(
		fs,
		f.lister,
		f.buildTool,
		adapter.NewCBORModuleCodec(fs),
		f.decompiler,
		f.reportStore,
		f.ui,
		f.obfuscator,
	)

	return f
}

func (f *workflowFixture) project(rel string) m.Path {
	return m.Path(filepath.Join(f.dir, rel))
}

func (f *workflowFixture) reportPath() m.Path {
	return m.Path(filepath.Join(string(f.out), adapter.DefaultReportName))
}

func (f *workflowFixture) args() domain.RunArgs {
	return domain.RunArgs{Solution: f.solution, Output: f.out, Decompile: true, Parallel: 2}
}

func TestWorkflow_Run_Success(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	appModule := m.Path("/build/App/bin/Release/App.dll")
	appOutput := m.Path(filepath.Join(string(f.out), "assemblies", "App.dll"))
	sourcesDir := m.Path(filepath.Join(string(f.out), "sources", "App"))

	f.buildTool.EXPECT().Build(mock.Anything, f.solution, domain.DefaultConfiguration).Return(nil).Once()
	f.lister.EXPECT().Projects(f.solution).
		Return([]m.Path{m.Path(filepath.Join("src", "App", "App.csproj")), m.Path(filepath.Join("src", "Gone", "Gone.csproj"))}, nil).Once()
	f.buildTool.EXPECT().TargetPath(mock.Anything, f.project("src/App/App.csproj"), domain.DefaultConfiguration).
		Return(appModule, nil).Once()

	batch := domain.BatchResult{Results: []m.ModuleResult{{Input: appModule, Output: appOutput, Status: m.StatusObfuscated, Methods: 3}}}
	f.obfuscator.EXPECT().ObfuscateModules(mock.Anything, []m.Path{appModule}, f.out).Return(batch, nil).Once()
	f.decompiler.EXPECT().Decompile(mock.Anything, appOutput, f.out).Return(sourcesDir, nil).Once()

	f.reportStore.EXPECT().SaveReport(f.reportPath(), mock.MatchedBy(func(report m.RunReport) bool {
		return len(report.Modules) == 1 && len(report.Decompiled) == 1
	})).Return(nil).Once()
	f.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return().Once()

	report, err := f.workflow.Run(ctx, f.args())
	require.NoError(t, err)

	f.ui.AssertCalled(t, "DisplayWarning", mock.Anything, "project not found: "+string(f.project("src/Gone/Gone.csproj")), nil)

	assert.Equal(t, f.solution, report.Solution)
	assert.Equal(t, domain.DefaultConfiguration, report.Configuration)
	assert.Equal(t, []m.Path{appOutput}, report.Outputs())
	require.Len(t, report.Decompiled, 1)
	assert.Equal(t, sourcesDir, report.Decompiled[0].Output)

	info, err := os.Stat(string(f.out))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWorkflow_Run_BuildFailureIsFatal(t *testing.T) {
	f := newWorkflowFixture(t)

	f.buildTool.EXPECT().Build(mock.Anything, f.solution, "Debug").
		Return(&adapter.CommandError{Command: "dotnet build", ExitCode: 1}).Once()

	args := f.args()
	args.Configuration = "Debug"

	_, err := f.workflow.Run(context.Background(), args)

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "build", upstream.Stage)

	var cmdErr *adapter.CommandError
	assert.ErrorAs(t, err, &cmdErr)
}

func TestWorkflow_Run_SolutionMissing(t *testing.T) {
	f := newWorkflowFixture(t)

	args := f.args()
	args.Solution = m.Path(filepath.Join(f.dir, "Nope.sln"))

	_, err := f.workflow.Run(context.Background(), args)
	assert.ErrorContains(t, err, "solution not found")
}

func TestWorkflow_Run_NoProjects(t *testing.T) {
	f := newWorkflowFixture(t)

	f.buildTool.EXPECT().Build(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	f.lister.EXPECT().Projects(f.solution).Return(nil, nil).Once()

	_, err := f.workflow.Run(context.Background(), f.args())
	assert.ErrorIs(t, err, domain.ErrNoProjects)
}

func TestWorkflow_Run_ListingFailure(t *testing.T) {
	f := newWorkflowFixture(t)

	f.buildTool.EXPECT().Build(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	f.lister.EXPECT().Projects(f.solution).Return(nil, adapter.ErrUnsupportedManifest).Once()

	_, err := f.workflow.Run(context.Background(), f.args())
	assert.ErrorIs(t, err, adapter.ErrUnsupportedManifest)
}

func TestWorkflow_Run_TargetPathQueryFailureIsFatal(t *testing.T) {
	f := newWorkflowFixture(t)

	f.buildTool.EXPECT().Build(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	f.lister.EXPECT().Projects(f.solution).Return([]m.Path{m.Path(filepath.Join("src", "App", "App.csproj"))}, nil).Once()
	f.buildTool.EXPECT().TargetPath(mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("msbuild crashed")).Once()

	_, err := f.workflow.Run(context.Background(), f.args())

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "target path query", upstream.Stage)
}

func TestWorkflow_Run_EmptyTargetIsSkipped(t *testing.T) {
	f := newWorkflowFixture(t)

	f.buildTool.EXPECT().Build(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	f.lister.EXPECT().Projects(f.solution).Return([]m.Path{m.Path(filepath.Join("src", "App", "App.csproj"))}, nil).Once()
	f.buildTool.EXPECT().TargetPath(mock.Anything, mock.Anything, mock.Anything).Return("", nil).Once()
	f.obfuscator.EXPECT().ObfuscateModules(mock.Anything, []m.Path{}, f.out).
		Return(domain.BatchResult{}, domain.ErrNoModulesObfuscated).Once()
	f.reportStore.EXPECT().SaveReport(f.reportPath(), mock.Anything).Return(nil).Once()

	_, err := f.workflow.Run(context.Background(), f.args())
	assert.ErrorIs(t, err, domain.ErrNoModulesObfuscated)
}

func TestWorkflow_Run_BatchFailureSkipsDecompile(t *testing.T) {
	f := newWorkflowFixture(t)
	appModule := m.Path("/build/App.dll")

	f.buildTool.EXPECT().Build(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	f.lister.EXPECT().Projects(f.solution).Return([]m.Path{m.Path(filepath.Join("src", "App", "App.csproj"))}, nil).Once()
	f.buildTool.EXPECT().TargetPath(mock.Anything, mock.Anything, mock.Anything).Return(appModule, nil).Once()

	missing := &domain.MissingInputError{Path: appModule}
	batch := domain.BatchResult{
		Results: []m.ModuleResult{{Input: appModule, Status: m.StatusMissing, Error: missing.Error()}},
		Errors:  multierror.Append(nil, missing),
	}
	f.obfuscator.EXPECT().ObfuscateModules(mock.Anything, []m.Path{appModule}, f.out).
		Return(batch, domain.ErrNoModulesObfuscated).Once()
	f.reportStore.EXPECT().SaveReport(f.reportPath(), mock.Anything).Return(nil).Once()

	report, err := f.workflow.Run(context.Background(), f.args())
	require.ErrorIs(t, err, domain.ErrNoModulesObfuscated)
	assert.Len(t, report.Modules, 1)
	assert.Empty(t, report.Decompiled)
}

func TestWorkflow_Run_DecompileFailureIsRecorded(t *testing.T) {
	f := newWorkflowFixture(t)

	first := m.Path("/obf/assemblies/A.dll")
	second := m.Path("/obf/assemblies/B.dll")

	f.buildTool.EXPECT().Build(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	f.lister.EXPECT().Projects(f.solution).Return([]m.Path{m.Path(filepath.Join("src", "App", "App.csproj"))}, nil).Once()
	f.buildTool.EXPECT().TargetPath(mock.Anything, mock.Anything, mock.Anything).Return("/build/A.dll", nil).Once()

	batch := domain.BatchResult{Results: []m.ModuleResult{
		{Input: "/build/A.dll", Output: first, Status: m.StatusObfuscated},
		{Input: "/build/B.dll", Output: second, Status: m.StatusObfuscated},
	}}
	f.obfuscator.EXPECT().ObfuscateModules(mock.Anything, mock.Anything, f.out).Return(batch, nil).Once()
	f.decompiler.EXPECT().Decompile(mock.Anything, first, f.out).Return("", errors.New("listing failed")).Once()
	f.decompiler.EXPECT().Decompile(mock.Anything, second, f.out).Return("/obf/sources/B", nil).Once()
	f.reportStore.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(errors.New("read-only")).Once()
	f.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return().Once()

	report, err := f.workflow.Run(context.Background(), f.args())
	require.NoError(t, err)

	require.Len(t, report.Decompiled, 2)
	assert.Equal(t, first, report.Decompiled[0].Module)
	assert.Equal(t, "listing failed", report.Decompiled[0].Error)
	assert.Equal(t, m.Path("/obf/sources/B"), report.Decompiled[1].Output)
}

func TestWorkflow_Run_DecompileDisabled(t *testing.T) {
	f := newWorkflowFixture(t)

	f.buildTool.EXPECT().Build(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	f.lister.EXPECT().Projects(f.solution).Return([]m.Path{m.Path(filepath.Join("src", "App", "App.csproj"))}, nil).Once()
	f.buildTool.EXPECT().TargetPath(mock.Anything, mock.Anything, mock.Anything).Return("/build/A.dll", nil).Once()
	f.obfuscator.EXPECT().ObfuscateModules(mock.Anything, mock.Anything, f.out).
		Return(domain.BatchResult{Results: []m.ModuleResult{{Input: "/build/A.dll", Output: "/obf/A.dll", Status: m.StatusObfuscated}}}, nil).Once()
	f.reportStore.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(nil).Once()
	f.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return().Once()

	args := f.args()
	args.Decompile = false

	report, err := f.workflow.Run(context.Background(), args)
	require.NoError(t, err)
	assert.Empty(t, report.Decompiled)
}

func TestWorkflow_View(t *testing.T) {
	f := newWorkflowFixture(t)
	saved := m.RunReport{Solution: "/src/App.sln", Output: "/obf"}

	f.reportStore.EXPECT().LoadReport(m.Path("/obf/opaq-report.yaml")).Return(saved, nil).Once()
	f.ui.EXPECT().DisplaySummary(mock.Anything, saved).Return().Once()

	report, err := f.workflow.View(context.Background(), "/obf/opaq-report.yaml")
	require.NoError(t, err)
	assert.Equal(t, saved, report)

	f.reportStore.EXPECT().LoadReport(m.Path("missing.yaml")).Return(m.RunReport{}, os.ErrNotExist).Once()

	_, err = f.workflow.View(context.Background(), "missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWorkflow_ListingAndDiff(t *testing.T) {
	f := newWorkflowFixture(t)
	fs := adapter.NewLocalArtifactFS()
	codec := adapter.NewCBORModuleCodec(fs)

	typ := m.NewTypeDef("App", "Program")
	typ.AddMethod(&m.Method{
		Name:      "Main",
		Signature: "()",
		Body:      &m.Body{MaxStack: 1, Instructions: []*m.Instruction{m.NewInstruction(m.Nop, nil), m.NewInstruction(m.Ret, nil)}},
	})
	module := &m.Module{Name: "App.dll", Types: []*m.TypeDef{typ}}

	before := m.Path(filepath.Join(f.dir, "in", "App.dll"))
	require.NoError(t, codec.Save(before, module))

	obf := domain.NewObfuscator(fs, codec, domain.NewOpaquePredicateInjector(), "")
	result, err := obf.ObfuscateModule(context.Background(), before, f.out)
	require.NoError(t, err)

	listing, err := f.workflow.Listing(context.Background(), result.Output)
	require.NoError(t, err)
	assert.Contains(t, listing, "IL_0000: ldc.i4.0")
	assert.Contains(t, listing, ".locals init ([0] System.Boolean V_0)")

	diff, err := f.workflow.Diff(context.Background(), before, result.Output)
	require.NoError(t, err)
	assert.Contains(t, diff, "+    IL_0000: ldc.i4.0")
	assert.Contains(t, diff, "+    IL_0009: brtrue.s IL_000c")
	assert.Contains(t, diff, "-    IL_0000: nop")

	_, err = f.workflow.Diff(context.Background(), before, m.Path(filepath.Join(f.dir, "missing.dll")))
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = f.workflow.Listing(ctx, before)
	assert.ErrorIs(t, err, context.Canceled)
}
