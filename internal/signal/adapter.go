package signal

import (
	"context"
	"fmt"
	"log"
	"time"

	"AI_PROCTOR/go-backend/internal/vision"
)

// FrameSignal is the canonical per-frame record consumed by the focus,
// identity and alerting stages. It is built fresh for every processed
// frame and never persisted.
type FrameSignal struct {
	Timestamp   time.Time
	FacePresent bool
	FaceCount   int
	Yaw         float64
	Pitch       float64
	GazeOffset  float64
	Embedding   []float32
	Objects     []vision.DetectedObject
	// ObjectsChecked is false when the object detector was skipped or
	// failed on this frame. Skipped frames assert nothing about objects.
	ObjectsChecked bool
}

// Adapter normalizes raw detector outputs into a FrameSignal. The object
// detector only runs on every objectEvery-th frame to bound CPU cost.
// An Adapter belongs to a single session worker and is not safe for
// concurrent use.
type Adapter struct {
	faces       vision.FaceDetector
	objects     vision.ObjectDetector
	objectEvery int
	frameCount  int
}

func NewAdapter(faces vision.FaceDetector, objects vision.ObjectDetector, objectEvery int) *Adapter {
	if objectEvery < 1 {
		objectEvery = 1
	}
	return &Adapter{
		faces:       faces,
		objects:     objects,
		objectEvery: objectEvery,
	}
}

// Adapt invokes the external detectors for one frame. A face detector
// failure makes the whole frame indeterminate and is returned as an
// error; an object detector failure only leaves ObjectsChecked false.
// Zero faces is a normal outcome, not an error.
func (a *Adapter) Adapt(ctx context.Context, image []byte, now time.Time) (FrameSignal, error) {
	a.frameCount++

	if a.faces == nil {
		return FrameSignal{}, fmt.Errorf("face detector unavailable")
	}

	faces, err := a.faces.DetectFaces(ctx, image)
	if err != nil {
		return FrameSignal{}, fmt.Errorf("face detection failed: %w", err)
	}

	sig := FrameSignal{
		Timestamp: now,
		FaceCount: len(faces),
	}

	if len(faces) > 0 {
		primary := faces[0]
		sig.FacePresent = true
		sig.Yaw = float64(primary.Yaw)
		sig.Pitch = float64(primary.Pitch)
		sig.GazeOffset = float64(primary.GazeOffset)
		sig.Embedding = primary.Embedding
	}

	if a.objects != nil && a.frameCount%a.objectEvery == 0 {
		objects, err := a.objects.DetectObjects(ctx, image)
		if err != nil {
			log.Printf("Object detection failed, treating frame as unchecked: %v", err)
		} else {
			sig.Objects = objects
			sig.ObjectsChecked = true
		}
	}

	return sig, nil
}
