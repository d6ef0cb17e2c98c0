package s3store_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"studiohub/pkg/media/s3store"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	s3iface.S3API

	objects map[string][]byte
	types   map[string]string
	err     error
}

func (f *fakeS3) PutObjectWithContext(_ aws.Context, in *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.StringValue(in.Bucket) + "/" + aws.StringValue(in.Key)
	f.objects[key] = b
	f.types[key] = aws.StringValue(in.ContentType)

	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObjectWithContext(_ aws.Context, in *s3.DeleteObjectInput, _ ...request.Option) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	delete(f.objects, aws.StringValue(in.Bucket)+"/"+aws.StringValue(in.Key))

	return &s3.DeleteObjectOutput{}, nil
}

func TestStore(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
	store := s3store.NewWithClient(fake, s3store.Options{Bucket: "photos"})
	ctx := context.Background()

	body := []byte("jpeg bytes")
	require.NoError(t, store.Put(ctx, "tenants/t/galleries/g/p/web.jpg", bytes.NewReader(body), int64(len(body)), "image/jpeg"))
	require.Equal(t, body, fake.objects["photos/tenants/t/galleries/g/p/web.jpg"])
	require.Equal(t, "image/jpeg", fake.types["photos/tenants/t/galleries/g/p/web.jpg"])

	require.NoError(t, store.Delete(ctx, "tenants/t/galleries/g/p/web.jpg"))
	require.Empty(t, fake.objects)

	fake.err = errors.New("access denied")
	err := store.Put(ctx, "k", bytes.NewReader(body), int64(len(body)), "image/jpeg")
	require.ErrorContains(t, err, "s3://photos/k")
	require.ErrorIs(t, err, fake.err)
}

func TestNew(t *testing.T) {
	store, err := s3store.New(s3store.Options{
		Region:          "eu-central-1",
		Bucket:          "photos",
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
	})
	require.NoError(t, err)
	require.NotNil(t, store)
}
