package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"AI_PROCTOR/go-backend/internal/vision"
	"AI_PROCTOR/go-backend/pkg/pb"
)

// VisionClient talks to the Python vision service. It implements both
// vision.FaceDetector and vision.ObjectDetector.
type VisionClient struct {
	conn   *grpc.ClientConn
	client pb.VisionAnalysisClient
	url    string
}

func NewVisionClient(url string) (*VisionClient, error) {
	log.Printf("Connecting to vision gRPC at %s", url)

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(50*1024*1024),
			grpc.MaxCallSendMsgSize(50*1024*1024),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             3 * time.Second,
			PermitWithoutStream: true,
		}),
	}

	conn, err := grpc.Dial(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to vision gRPC server at %s: %w", url, err)
	}

	client := pb.NewVisionAnalysisClient(conn)
	log.Printf("Connected to vision gRPC server at %s", url)

	return &VisionClient{
		conn:   conn,
		client: client,
		url:    url,
	}, nil
}

func (vc *VisionClient) DetectFaces(ctx context.Context, image []byte) ([]vision.Face, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := vc.client.DetectFaces(ctx, &pb.Frame{
		FrameData: image,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return nil, fmt.Errorf("could not detect faces: %w", err)
	}

	faces := make([]vision.Face, 0, len(result.Faces))
	for _, f := range result.Faces {
		faces = append(faces, vision.Face{
			Embedding:  f.Embedding,
			Yaw:        f.Yaw,
			Pitch:      f.Pitch,
			GazeOffset: f.GazeOffset,
			BBox:       f.Bbox,
		})
	}
	return faces, nil
}

func (vc *VisionClient) DetectObjects(ctx context.Context, image []byte) ([]vision.DetectedObject, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := vc.client.DetectObjects(ctx, &pb.Frame{
		FrameData: image,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return nil, fmt.Errorf("could not detect objects: %w", err)
	}

	objects := make([]vision.DetectedObject, 0, len(result.Objects))
	for _, o := range result.Objects {
		objects = append(objects, vision.DetectedObject{
			Label:      o.Label,
			Confidence: o.Confidence,
			BBox:       o.Bbox,
		})
	}
	return objects, nil
}

func (vc *VisionClient) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := vc.client.Health(ctx, &pb.Empty{})
	return err == nil
}

func (vc *VisionClient) Close() error {
	if vc.conn != nil {
		return vc.conn.Close()
	}
	return nil
}
