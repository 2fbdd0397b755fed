package blob

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_PutSizeDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewLocal(root, "https://site.example/uploads/")
	require.NoError(t, err)

	p, err := store.Put(ctx, "2026/10/a.jpg", []byte("hello"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "2026", "10", "a.jpg"), p)

	size, err := store.Size(ctx, "2026/10/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)
	assert.Equal(t, "https://site.example/uploads/2026/10/a.jpg", store.URL("2026/10/a.jpg"))

	require.NoError(t, store.Delete(ctx, "2026/10/a.jpg"))
	_, err = os.Stat(p)
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, store.Delete(ctx, "2026/10/a.jpg"))
}

func TestLocal_KeyCannotEscapeRoot(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewLocal(filepath.Join(root, "uploads"), "")
	require.NoError(t, err)

	p, err := store.Put(ctx, "../../etc/x.jpg", []byte("x"), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "uploads", "etc", "x.jpg"), p)

	_, err = store.Put(ctx, "", []byte("x"), "")
	assert.Error(t, err)
}

type fakeS3 struct {
	objects map[string][]byte
	types   map[string]string
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	data := f.objects[aws.ToString(in.Key)]
	return &s3.HeadObjectOutput{ContentLength: aws.Int64(int64(len(data)))}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3_PutUsesPrefix(t *testing.T) {
	ctx := context.Background()
	client := &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
	store := NewS3(client, S3Config{Bucket: "media", Prefix: "/site/", PublicBaseURL: "https://cdn.example/"})

	loc, err := store.Put(ctx, "2026/10/b.webp", []byte("abc"), "image/webp")
	require.NoError(t, err)
	assert.Equal(t, "s3://media/site/2026/10/b.webp", loc)
	assert.Equal(t, "image/webp", client.types["site/2026/10/b.webp"])

	size, err := store.Size(ctx, "2026/10/b.webp")
	require.NoError(t, err)
	assert.Equal(t, int64(3), size)
	assert.Equal(t, "https://cdn.example/site/2026/10/b.webp", store.URL("2026/10/b.webp"))

	require.NoError(t, store.Delete(ctx, "2026/10/b.webp"))
	assert.Empty(t, client.objects)
}
