package vision

import "context"

// Face is one detected face in a frame.
type Face struct {
	Embedding  []float32
	Yaw        float32
	Pitch      float32
	GazeOffset float32
	BBox       []float32
}

// DetectedObject is one detected object in a frame.
type DetectedObject struct {
	Label      string
	Confidence float32
	BBox       []float32
}

// FaceDetector analyzes a frame for faces, head pose and gaze.
type FaceDetector interface {
	// DetectFaces returns all faces found in the encoded image.
	// An empty slice means no face was visible; it is not an error.
	DetectFaces(ctx context.Context, image []byte) ([]Face, error)
}

// ObjectDetector analyzes a frame for prohibited objects.
type ObjectDetector interface {
	DetectObjects(ctx context.Context, image []byte) ([]DetectedObject, error)
}
