package storage

import (
	"bytes"
	"context"
	"io"

	"restaurantes-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrImageNotFound = gridfs.ErrFileNotFound

// GridFSImageStore keeps menu-item images in a GridFS bucket. Image writes
// and the articulo metadata update are independent calls; an orphaned blob
// can result when the second one fails.
type GridFSImageStore struct {
	bucket *gridfs.Bucket
}

func NewGridFSImageStore(db *mongo.Database) (*GridFSImageStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName("imagenes"))
	if err != nil {
		return nil, err
	}
	return &GridFSImageStore{bucket: bucket}, nil
}

func (s *GridFSImageStore) Put(ctx context.Context, image domain.Image) (primitive.ObjectID, error) {
	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": image.ContentType})
	return s.bucket.UploadFromStream(image.Filename, bytes.NewReader(image.Data), opts)
}

func (s *GridFSImageStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Image, error) {
	stream, err := s.bucket.OpenDownloadStream(id)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, err
	}

	file := stream.GetFile()
	image := &domain.Image{Filename: file.Name, Data: data}
	if file.Metadata != nil {
		var meta struct {
			ContentType string `bson:"contentType"`
		}
		_ = bson.Unmarshal(file.Metadata, &meta)
		image.ContentType = meta.ContentType
	}
	if image.ContentType == "" {
		image.ContentType = "application/octet-stream"
	}
	return image, nil
}

func (s *GridFSImageStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.bucket.Delete(id)
}
