package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ReadMultipartFile reads an uploaded file fully into memory and sniffs its
// content type when the client did not provide one.
func ReadMultipartFile(file *multipart.FileHeader) ([]byte, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return nil, "", err
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		head := buf.Bytes()
		if len(head) > 512 {
			head = head[:512]
		}
		contentType = http.DetectContentType(head)
	}

	return buf.Bytes(), contentType, nil
}

// UniqueObjectName builds a collision-free object path under folder, keeping
// the original file extension
func UniqueObjectName(folder, originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	return fmt.Sprintf("%s/%s-%s%s", folder, time.Now().Format("20060102"), uuid.New().String(), ext)
}
