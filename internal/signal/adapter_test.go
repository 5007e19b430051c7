package signal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AI_PROCTOR/go-backend/internal/vision"
)

type fakeFaceDetector struct {
	faces []vision.Face
	err   error
	calls int
}

func (f *fakeFaceDetector) DetectFaces(ctx context.Context, image []byte) ([]vision.Face, error) {
	f.calls++
	return f.faces, f.err
}

type fakeObjectDetector struct {
	objects []vision.DetectedObject
	err     error
	calls   int
}

func (f *fakeObjectDetector) DetectObjects(ctx context.Context, image []byte) ([]vision.DetectedObject, error) {
	f.calls++
	return f.objects, f.err
}

func TestAdaptSingleFace(t *testing.T) {
	faces := &fakeFaceDetector{faces: []vision.Face{
		{Embedding: []float32{0.1, 0.2}, Yaw: 12, Pitch: -5, GazeOffset: 0.3},
	}}
	objects := &fakeObjectDetector{objects: []vision.DetectedObject{{Label: "phone", Confidence: 0.8}}}
	a := NewAdapter(faces, objects, 1)

	now := time.Now()
	sig, err := a.Adapt(context.Background(), []byte("jpeg"), now)
	require.NoError(t, err)

	assert.True(t, sig.FacePresent)
	assert.Equal(t, 1, sig.FaceCount)
	assert.Equal(t, 12.0, sig.Yaw)
	assert.Equal(t, -5.0, sig.Pitch)
	assert.InDelta(t, 0.3, sig.GazeOffset, 1e-6)
	assert.Equal(t, []float32{0.1, 0.2}, sig.Embedding)
	assert.True(t, sig.ObjectsChecked)
	assert.Len(t, sig.Objects, 1)
	assert.Equal(t, now, sig.Timestamp)
}

func TestAdaptZeroFacesIsNotAnError(t *testing.T) {
	a := NewAdapter(&fakeFaceDetector{}, &fakeObjectDetector{}, 1)

	sig, err := a.Adapt(context.Background(), []byte("jpeg"), time.Now())
	require.NoError(t, err)
	assert.False(t, sig.FacePresent)
	assert.Equal(t, 0, sig.FaceCount)
	assert.Nil(t, sig.Embedding)
}

func TestAdaptMultipleFacesUsesPrimary(t *testing.T) {
	faces := &fakeFaceDetector{faces: []vision.Face{
		{Yaw: 1, Embedding: []float32{1}},
		{Yaw: 99, Embedding: []float32{9}},
	}}
	a := NewAdapter(faces, nil, 1)

	sig, err := a.Adapt(context.Background(), []byte("jpeg"), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, sig.FaceCount)
	assert.Equal(t, 1.0, sig.Yaw)
	assert.Equal(t, []float32{1}, sig.Embedding)
}

func TestAdaptFaceDetectorFailureFailsTheFrame(t *testing.T) {
	faces := &fakeFaceDetector{err: errors.New("upstream timeout")}
	a := NewAdapter(faces, &fakeObjectDetector{}, 1)

	_, err := a.Adapt(context.Background(), []byte("jpeg"), time.Now())
	assert.Error(t, err)
}

func TestAdaptNilFaceDetector(t *testing.T) {
	a := NewAdapter(nil, &fakeObjectDetector{}, 1)

	_, err := a.Adapt(context.Background(), []byte("jpeg"), time.Now())
	assert.Error(t, err)
}

func TestObjectDetectorRunsEveryKthFrame(t *testing.T) {
	faces := &fakeFaceDetector{faces: []vision.Face{{Embedding: []float32{1}}}}
	objects := &fakeObjectDetector{}
	a := NewAdapter(faces, objects, 2)

	var checked []bool
	for i := 0; i < 6; i++ {
		sig, err := a.Adapt(context.Background(), []byte("jpeg"), time.Now())
		require.NoError(t, err)
		checked = append(checked, sig.ObjectsChecked)
	}

	assert.Equal(t, []bool{false, true, false, true, false, true}, checked)
	assert.Equal(t, 3, objects.calls)
	assert.Equal(t, 6, faces.calls, "face detector runs on every frame")
}

func TestObjectDetectorFailureLeavesFrameUnchecked(t *testing.T) {
	faces := &fakeFaceDetector{faces: []vision.Face{{Embedding: []float32{1}}}}
	objects := &fakeObjectDetector{err: errors.New("model not loaded")}
	a := NewAdapter(faces, objects, 1)

	sig, err := a.Adapt(context.Background(), []byte("jpeg"), time.Now())
	require.NoError(t, err, "an object detector failure must not fail the frame")
	assert.False(t, sig.ObjectsChecked)
	assert.Nil(t, sig.Objects)
}

func TestNilObjectDetectorSkipsObjects(t *testing.T) {
	faces := &fakeFaceDetector{faces: []vision.Face{{Embedding: []float32{1}}}}
	a := NewAdapter(faces, nil, 1)

	sig, err := a.Adapt(context.Background(), []byte("jpeg"), time.Now())
	require.NoError(t, err)
	assert.False(t, sig.ObjectsChecked)
}
