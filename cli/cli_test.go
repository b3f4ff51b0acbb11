package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"wad-info/logger"
	"wad-info/wad/wadtest"
)

func parse(t *testing.T, argv ...string) Args {
	args := Args{}
	parser, err := arg.NewParser(arg.Config{}, &args)
	require.NoError(t, err)
	require.NoError(t, parser.Parse(argv))
	return args
}

func TestParse(t *testing.T) {
	args := parse(t, "info", "-i", "Hade.wad", "--csv", "--header")
	require.NotNil(t, args.Info)
	assert.Equal(t, "Hade.wad", args.Info.File)
	assert.Equal(t, Outputs{CSV: true, Header: true}, args.Info.Outputs)
	assert.Nil(t, args.Batch)

	args = parse(t, "--log-level", "debug", "batch", "--path", "games", "--json")
	require.NotNil(t, args.Batch)
	assert.Equal(t, "games", args.Batch.Path)
	assert.True(t, args.Batch.JSON)
	assert.Equal(t, "debug", args.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		args  Args
		valid bool
	}{
		"info without outputs": {
			args:  Args{Info: &InfoCmd{File: "x.wad"}},
			valid: false,
		},
		"info with csv": {
			args:  Args{Info: &InfoCmd{File: "x.wad", Outputs: Outputs{CSV: true}}},
			valid: true,
		},
		"batch without outputs": {
			args:  Args{Batch: &BatchCmd{Path: "."}},
			valid: false,
		},
		"batch with offsets": {
			args:  Args{Batch: &BatchCmd{Outputs: Outputs{Offsets: true}}},
			valid: true,
		},
		"interactive": {
			args:  Args{Interactive: &InteractiveCmd{}},
			valid: true,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.args.Validate()
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrNoOutput))
			}
		})
	}
}

func TestOutputs_NeedsTitle(t *testing.T) {
	assert.False(t, Outputs{Header: true, Offsets: true}.NeedsTitle())
	assert.True(t, Outputs{CSV: true}.NeedsTitle())
	assert.True(t, Outputs{JSON: true}.NeedsTitle())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := strings.Join(
		[]string{
			"path: roms",
			"csv: true",
			"log_level: warn",
		},
		"\n",
	)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Path: "roms", CSV: true, LogLevel: "warn"}, cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("csv: [not a bool"), 0644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Apply(t *testing.T) {
	cfg := Config{Path: "roms", Header: true, LogLevel: "warn"}

	args := Args{LogLevel: "debug", Batch: &BatchCmd{Outputs: Outputs{CSV: true}}}
	cfg.Apply(&args)
	assert.Equal(t, "debug", args.LogLevel)
	assert.Equal(t, "roms", args.Batch.Path)
	assert.Equal(t, Outputs{CSV: true, Header: true}, args.Batch.Outputs)

	args = Args{Batch: &BatchCmd{Path: "mine"}}
	cfg.Apply(&args)
	assert.Equal(t, "warn", args.LogLevel)
	assert.Equal(t, "mine", args.Batch.Path)

	args = Args{Interactive: &InteractiveCmd{}}
	Config{}.Apply(&args)
	assert.Equal(t, DefaultPath, args.Interactive.Path)

	args = Args{Info: &InfoCmd{File: "x.wad"}}
	cfg.Apply(&args)
	assert.NoError(t, args.Validate())
}

type RunTestSuite struct {
	Dir    string
	Ctx    context.Context
	Stdout *bytes.Buffer
	Stderr *bytes.Buffer
	R      *require.Assertions
	suite.Suite
}

func (suite *RunTestSuite) SetupTest() {
	suite.R = suite.Require()
	suite.Dir = suite.T().TempDir()
	suite.Ctx = logger.WithContext(context.Background(), logger.Discard())
	suite.Stdout = &bytes.Buffer{}
	suite.Stderr = &bytes.Buffer{}

	headerOnly := wadtest.HeaderBytes(wadtest.DefaultFields())
	files := map[string][]byte{
		"a.wad":      wadtest.BuildDefault(),
		"b.wad":      []byte("this is not the file you are looking for"),
		"c.wad":      headerOnly,
		"readme.txt": wadtest.BuildDefault(),
	}
	for name, bs := range files {
		suite.R.NoError(os.WriteFile(filepath.Join(suite.Dir, name), bs, 0644))
	}
}

func (suite *RunTestSuite) path(name string) string {
	return filepath.Join(suite.Dir, name)
}

func (suite *RunTestSuite) TestInfo_CSV() {
	args := Args{Info: &InfoCmd{File: suite.path("a.wad"), Outputs: Outputs{CSV: true}}}

	code := Run(suite.Ctx, args, suite.Stdout, suite.Stderr)
	suite.R.Equal(0, code)
	suite.R.Equal(
		"0001000148414445,0002,00112233445566778899aabbccddeeff,\""+suite.path("a.wad")+"\"\n",
		suite.Stdout.String(),
	)
	suite.R.Empty(suite.Stderr.String())
}

func (suite *RunTestSuite) TestInfo_HeaderOnlyFile() {
	args := Args{Info: &InfoCmd{File: suite.path("c.wad"), Outputs: Outputs{Header: true, Offsets: true}}}

	code := Run(suite.Ctx, args, suite.Stdout, suite.Stderr)
	suite.R.Equal(0, code)
	suite.R.Contains(suite.Stdout.String(), "Cert chain size:\t2560 bytes")
	suite.R.Contains(suite.Stdout.String(), "footer")
}

func (suite *RunTestSuite) TestInfo_Invalid() {
	args := Args{Info: &InfoCmd{File: suite.path("b.wad"), Outputs: Outputs{Header: true}}}

	code := Run(suite.Ctx, args, suite.Stdout, suite.Stderr)
	suite.R.Equal(1, code)
	suite.R.Empty(suite.Stdout.String())
	suite.R.Equal("Error: invalid WAD file: "+suite.path("b.wad")+"\n", suite.Stderr.String())
}

func (suite *RunTestSuite) TestBatch_ContinuesAfterErrors() {
	args := Args{Batch: &BatchCmd{Path: suite.Dir, Outputs: Outputs{CSV: true}}}

	code := Run(suite.Ctx, args, suite.Stdout, suite.Stderr)
	suite.R.Equal(1, code)

	lines := strings.Split(strings.TrimRight(suite.Stdout.String(), "\n"), "\n")
	suite.R.Len(lines, 1)
	suite.R.True(strings.HasPrefix(lines[0], "0001000148414445,0002,"))

	errLines := strings.Split(strings.TrimRight(suite.Stderr.String(), "\n"), "\n")
	suite.R.Len(errLines, 2)
	suite.R.Equal("Error: invalid WAD file: "+suite.path("b.wad"), errLines[0])
	suite.R.Contains(errLines[1], "truncated input")
}

func (suite *RunTestSuite) TestBatch_HeaderOnly() {
	args := Args{Batch: &BatchCmd{Path: suite.Dir, Outputs: Outputs{Header: true}}}

	code := Run(suite.Ctx, args, suite.Stdout, suite.Stderr)
	suite.R.Equal(1, code)
	suite.R.Equal(2, strings.Count(suite.Stdout.String(), "Header size:\t\t32 bytes"))
}

func (suite *RunTestSuite) TestBatch_JSON() {
	args := Args{Batch: &BatchCmd{Path: suite.Dir, Outputs: Outputs{JSON: true}}}

	code := Run(suite.Ctx, args, suite.Stdout, suite.Stderr)
	suite.R.Equal(1, code)
	suite.R.Contains(suite.Stdout.String(), "00112233445566778899aabbccddeeff")
}

func (suite *RunTestSuite) TestBatch_Empty() {
	args := Args{Batch: &BatchCmd{Path: suite.T().TempDir(), Outputs: Outputs{CSV: true}}}

	code := Run(suite.Ctx, args, suite.Stdout, suite.Stderr)
	suite.R.Equal(0, code)
	suite.R.Empty(suite.Stdout.String())
}

func (suite *RunTestSuite) TestNoCommand() {
	suite.R.Equal(2, Run(suite.Ctx, Args{}, suite.Stdout, suite.Stderr))
}

func TestRun(t *testing.T) {
	suite.Run(t, new(RunTestSuite))
}
