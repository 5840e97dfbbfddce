package lib

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path"
	"time"

	awslib "ers/src/lib/aws"

	"github.com/yeqown/go-qrcode"
)

// GenerateTicketQR renders the attendee ticket as a QR code image and
// returns a URL where the image can be fetched. When an assets bucket is
// configured the image is uploaded to S3 and the presigned URL cached in
// redis under the ticket code, otherwise the local file path is returned.
func GenerateTicketQR(registrationID uint, ticketCode string, eventTitle string) (string, error) {
	rawData := map[string]any{
		"registrationId": registrationID,
		"ticketCode":     ticketCode,
		"eventTitle":     eventTitle,
	}
	rawBytes, _ := json.Marshal(rawData)
	rawText := string(rawBytes)

	qrc, err := qrcode.New(rawText)
	if err != nil {
		return "", err
	}
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("Could not read working directory: %s\n", err.Error())
		return "", err
	}
	tempdir := os.Getenv("TEMP_DIR")
	filepath := path.Join(wd, tempdir, fmt.Sprintf("%s.jpeg", ticketCode))
	if err = qrc.Save(filepath); err != nil {
		log.Printf("Could not save qrcode to file [%s]: %s\n", filepath, err.Error())
		return "", err
	}
	if os.Getenv("S3_ASSETS_BUCKET") == "" {
		return filepath, nil
	}
	url, err := awslib.S3UploadAsset(ticketCode, filepath)
	if err != nil {
		log.Printf("Error uploading asset to S3 bucket: %s\n", err.Error())
		return "", err
	}
	if rd := GetRedisClient(); rd != nil {
		rd.SetEx(context.Background(), ticketCode, *url, 2*time.Hour)
	}
	return *url, nil
}

// DownloadTicketQR returns the rendered QR image for a ticket code. The
// local temp file is preferred; when it is gone and an assets bucket is
// configured the image is pulled back from S3 first.
func DownloadTicketQR(ticketCode string) ([]byte, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	tempdir := os.Getenv("TEMP_DIR")
	filepath := path.Join(wd, tempdir, fmt.Sprintf("%s.jpeg", ticketCode))
	if _, err := os.Stat(filepath); err != nil {
		if os.Getenv("S3_ASSETS_BUCKET") == "" {
			return nil, err
		}
		if err := awslib.S3DownloadAsset(ticketCode); err != nil {
			log.Printf("Error downloading asset from S3 bucket: %s\n", err.Error())
			return nil, err
		}
	}
	return os.ReadFile(filepath)
}
