package services

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"zoop-converter/internal/codec"
	"zoop-converter/internal/models"
	"zoop-converter/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCodec struct {
	mock.Mock
}

func (m *mockCodec) Name() string { return "mock" }

func (m *mockCodec) EncodableExtensions() []string { return []string{".png"} }

func (m *mockCodec) Decode(path string) (codec.Decoded, error) {
	args := m.Called(path)
	if d, ok := args.Get(0).(codec.Decoded); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCodec) Encode(img codec.Decoded, destination string) error {
	return m.Called(img, destination).Error(0)
}

type fakeImage struct {
	released int
}

func (f *fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, 1, 1) }
func (f *fakeImage) Release()                { f.released++ }

type logLine struct {
	color   report.Color
	message string
}

type recordingEmitter struct {
	lines     []logLine
	states    []models.ConversionState
	summaries []models.Summary
}

func (r *recordingEmitter) Log(c report.Color, message string) {
	r.lines = append(r.lines, logLine{c, message})
}
func (r *recordingEmitter) SetState(s models.ConversionState) { r.states = append(r.states, s) }
func (r *recordingEmitter) Summary(s models.Summary)          { r.summaries = append(r.summaries, s) }

func newTestRunner(c codec.ImageCodec) (*ConversionRunner, *recordingEmitter, *models.ConversionStateRepository) {
	emitter := &recordingEmitter{}
	state := models.NewConversionStateRepository()
	runner := NewConversionRunner(c, emitter, state, nil)
	runner.mkdirAll = func(string, os.FileMode) error { return nil }
	return runner, emitter, state
}

func TestRunEmptyBatch(t *testing.T) {
	c := &mockCodec{}
	runner, emitter, state := newTestRunner(c)
	state.Start()

	summary := runner.Run(nil, models.OutputSpec{TargetDirectory: "/out", TargetExtension: ".png"})

	assert.Equal(t, models.Summary{}, summary)
	assert.Empty(t, emitter.summaries, "no report for a zero-attempt run")
	assert.Empty(t, emitter.lines)
	assert.Equal(t, []models.ConversionState{models.StateIdle}, emitter.states)
	assert.Equal(t, models.StateIdle, state.State())
	c.AssertNotCalled(t, "Decode", mock.Anything)
}

func TestRunContinuesPastDecodeFailure(t *testing.T) {
	spec := models.OutputSpec{TargetDirectory: "/out", TargetExtension: ".png"}
	img := &fakeImage{}

	c := &mockCodec{}
	c.On("Decode", "/in/p1.jpg").Return(img, nil).Once()
	c.On("Encode", img, filepath.Join("/out", "p1.png")).Return(nil).Once()
	c.On("Decode", "/in/p2.jpg").Return(nil, &codec.DecodeError{Path: "/in/p2.jpg", Err: errors.New("corrupt")}).Once()

	runner, emitter, _ := newTestRunner(c)
	summary := runner.Run([]string{"/in/p1.jpg", "/in/p2.jpg"}, spec)

	assert.Equal(t, models.Summary{Success: 1, Aborted: 1}, summary)
	require.Len(t, emitter.lines, 2)
	assert.Equal(t, report.ColorSuccess, emitter.lines[0].color)
	assert.Contains(t, emitter.lines[0].message, "/in/p1.jpg")
	assert.Equal(t, report.ColorFailure, emitter.lines[1].color)
	assert.Contains(t, emitter.lines[1].message, "/in/p2.jpg")
	assert.Equal(t, []models.Summary{{Success: 1, Aborted: 1}}, emitter.summaries)
	assert.Equal(t, 1, img.released)
	c.AssertExpectations(t)
}

func TestRunCountsEncodeFailureAsAborted(t *testing.T) {
	spec := models.OutputSpec{TargetDirectory: "/out", TargetExtension: "webp"}
	img := &fakeImage{}

	c := &mockCodec{}
	c.On("Decode", "/in/a.png").Return(img, nil)
	c.On("Encode", img, filepath.Join("/out", "a.webp")).Return(&codec.EncodeError{Path: "/out/a.webp", Err: errors.New("unsupported")})

	runner, emitter, state := newTestRunner(c)
	summary := runner.Run([]string{"/in/a.png"}, spec)

	assert.Equal(t, models.Summary{Aborted: 1}, summary)
	require.Len(t, emitter.lines, 1)
	assert.Equal(t, report.ColorFailure, emitter.lines[0].color)
	assert.Contains(t, emitter.lines[0].message, ".webp")
	assert.Equal(t, 1, img.released)

	last, runs := state.LastSummary()
	assert.Equal(t, summary, last)
	assert.Equal(t, 1, runs)
}

func TestRunUsesSameDestinationEveryTime(t *testing.T) {
	spec := models.OutputSpec{TargetDirectory: "/out", TargetExtension: ".gif"}
	img := &fakeImage{}
	want := filepath.Join("/out", "photo.gif")

	c := &mockCodec{}
	c.On("Decode", "/in/photo.jpg").Return(img, nil)
	c.On("Encode", img, want).Return(nil).Twice()

	runner, _, _ := newTestRunner(c)
	runner.Run([]string{"/in/photo.jpg"}, spec)
	runner.Run([]string{"/in/photo.jpg"}, spec)

	c.AssertExpectations(t)
}

func TestRunCreatesTargetDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "converted")
	img := &fakeImage{}

	c := &mockCodec{}
	c.On("Decode", "/in/a.png").Return(img, nil)
	c.On("Encode", img, filepath.Join(dir, "a.jpg")).Return(nil)

	runner := NewConversionRunner(c, &recordingEmitter{}, nil, nil)
	summary := runner.Run([]string{"/in/a.png"}, models.OutputSpec{TargetDirectory: dir, TargetExtension: ".jpg"})

	assert.Equal(t, 1, summary.Success)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRunWithRealCodec(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	writeTestPNG(t, src)
	broken := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(broken, []byte("nope"), 0o644))

	out := filepath.Join(dir, "out")
	runner := NewConversionRunner(codec.NewImagingCodec(90, false), &recordingEmitter{}, nil, nil)
	summary := runner.Run([]string{src, broken}, models.OutputSpec{TargetDirectory: out, TargetExtension: ".bmp"})

	assert.Equal(t, models.Summary{Success: 1, Aborted: 1}, summary)
	_, err := os.Stat(filepath.Join(out, "src.bmp"))
	assert.NoError(t, err)
}

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}
