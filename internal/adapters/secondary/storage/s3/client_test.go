package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/admin/tg-bots/gpt-bot/internal/pkg/logger"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/storage"
)

const testBucket = "gpt-bot"

// fakeS3 минимальный path-style S3: GET/HEAD/PUT объектов в памяти
type fakeS3 struct {
	mu           sync.Mutex
	objects      map[string][]byte
	contentTypes map[string]string
	puts         int
	denyReads    bool
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := strings.TrimPrefix(r.URL.Path, "/")

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if f.denyReads {
			writeS3Error(w, r, http.StatusForbidden, "AccessDenied")
			return
		}
		data, ok := f.objects[key]
		if !ok {
			writeS3Error(w, r, http.StatusNotFound, "NoSuchKey")
			return
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		w.Header().Set("ETag", `"0123456789abcdef"`)
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write(data)
		}
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeS3Error(w, r, http.StatusBadRequest, "IncompleteBody")
			return
		}
		if strings.HasPrefix(r.Header.Get("X-Amz-Content-Sha256"), "STREAMING") {
			body = decodeAWSChunked(body)
		}
		f.objects[key] = body
		f.contentTypes[key] = r.Header.Get("Content-Type")
		f.puts++
		w.Header().Set("ETag", `"0123456789abcdef"`)
		w.WriteHeader(http.StatusOK)
	default:
		writeS3Error(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func writeS3Error(w http.ResponseWriter, r *http.Request, status int, code string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>`+
		`<Error><Code>%s</Code><Message>%s</Message><Resource>%s</Resource><RequestId>test</RequestId></Error>`,
		code, code, r.URL.Path)
}

// decodeAWSChunked снимает aws-chunked обёртку: "<hex>;chunk-signature=...\r\n<data>\r\n"
func decodeAWSChunked(body []byte) []byte {
	var out []byte
	for len(body) > 0 {
		i := bytes.Index(body, []byte("\r\n"))
		if i < 0 {
			break
		}
		header := string(body[:i])
		if j := strings.IndexByte(header, ';'); j >= 0 {
			header = header[:j]
		}
		size, err := strconv.ParseInt(header, 16, 64)
		if err != nil || size == 0 || int(size) > len(body)-i-2 {
			break
		}
		body = body[i+2:]
		out = append(out, body[:size]...)
		body = bytes.TrimPrefix(body[size:], []byte("\r\n"))
	}
	return out
}

func newTestClient(t *testing.T) (*Client, *fakeS3) {
	t.Helper()

	fake := &fakeS3{objects: map[string][]byte{}, contentTypes: map[string]string{}}
	srv := httptest.NewTLSServer(fake)
	t.Cleanup(srv.Close)

	mc, err := minio.New(strings.TrimPrefix(srv.URL, "https://"), &minio.Options{
		Creds:        credentials.NewStaticV4("access", "secret", ""),
		Secure:       true,
		Transport:    srv.Client().Transport,
		Region:       "us-east-1",
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		t.Fatalf("minio.New() error = %v", err)
	}

	return NewClient(mc, testBucket, logger.Discard()), fake
}

func objectKey(day string) string {
	return testBucket + "/" + UsageLogPath(day)
}

func TestClient_GetFileMissingObject(t *testing.T) {
	t.Parallel()
	client, _ := newTestClient(t)

	_, err := client.GetFile(context.Background(), UsageLogPath("2026-03-14"))
	if !errors.Is(err, storage.ErrObjectNotFound) {
		t.Fatalf("GetFile() error = %v, want %v", err, storage.ErrObjectNotFound)
	}
}

func TestClient_Append(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing []byte
		line     string
		want     string
	}{
		{
			name: "missing object is created",
			line: "2026-03-14: User ann with name Ann (chatId - 10) has performed 1 requests\n",
			want: "2026-03-14: User ann with name Ann (chatId - 10) has performed 1 requests\n",
		},
		{
			name:     "existing object gets line appended",
			existing: []byte("2026-03-14: first\n"),
			line:     "2026-03-14: second\n",
			want:     "2026-03-14: first\n2026-03-14: second\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, fake := newTestClient(t)
			key := objectKey("2026-03-14")
			if tt.existing != nil {
				fake.objects[key] = tt.existing
			}

			if err := client.Append(context.Background(), "2026-03-14", tt.line); err != nil {
				t.Fatalf("Append() error = %v", err)
			}

			fake.mu.Lock()
			defer fake.mu.Unlock()
			if got := string(fake.objects[key]); got != tt.want {
				t.Fatalf("object = %q, want %q", got, tt.want)
			}
			if got := fake.contentTypes[key]; got != "text/plain; charset=utf-8" {
				t.Fatalf("content type = %q", got)
			}
		})
	}
}

func TestClient_AppendReadErrorPropagates(t *testing.T) {
	t.Parallel()
	client, fake := newTestClient(t)
	fake.denyReads = true

	err := client.Append(context.Background(), "2026-03-14", "line\n")
	if err == nil {
		t.Fatal("Append() error = nil, want read error")
	}
	if errors.Is(err, storage.ErrObjectNotFound) {
		t.Fatalf("Append() error = %v, must not be treated as missing object", err)
	}
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) || resp.Code != "AccessDenied" {
		t.Fatalf("Append() error = %v, want AccessDenied response", err)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if fake.puts != 0 {
		t.Fatalf("puts = %d, want 0 after failed read", fake.puts)
	}
}
