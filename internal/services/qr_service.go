package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/wantosing/backend/internal/config"
	"github.com/wantosing/backend/internal/models"
)

type QRService struct {
	cfg   *config.Config
	rooms *RoomService
}

func NewQRService(cfg *config.Config, rooms *RoomService) *QRService {
	return &QRService{cfg: cfg, rooms: rooms}
}

// GenerateRoomQRPNG renders the room's invite link as a QR code PNG for
// the invite screen.
func (s *QRService) GenerateRoomQRPNG(room *models.Room) ([]byte, error) {
	return qrcode.Encode(s.rooms.InviteURL(room.Code), qrcode.Medium, 512)
}

// GenerateInviteQRPDF generates a simple A4 PDF with the room code and a
// QR code for the invite link, for hosts who want to print the invite.
func (s *QRService) GenerateInviteQRPDF(room *models.Room) ([]byte, error) {
	inviteURL := s.rooms.InviteURL(room.Code)

	// Create QR PNG in memory
	var qrBuf bytes.Buffer
	png, err := qrcode.Encode(inviteURL, qrcode.Medium, 512)
	if err != nil {
		return nil, err
	}
	qrBuf.Write(png)

	// Create PDF
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "WantoSing Karaoke Invite")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 6, fmt.Sprintf("Room code: %s\nURL: %s", room.Code, inviteURL), "", "L", false)

	// Large room code for guests typing it in by hand
	pdf.Ln(6)
	pdf.SetFont("Courier", "B", 40)
	pdf.CellFormat(0, 18, room.Code, "", 1, "C", false, 0, "")

	// Register image from reader
	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader("qr", opt, bytes.NewReader(qrBuf.Bytes()))

	// Center QR on the page
	x := (210.0 - 100.0) / 2.0 // A4 width 210mm, QR size 100mm
	y := pdf.GetY() + 10
	pdf.ImageOptions("qr", x, y, 100, 100, false, opt, 0, "")

	// Output to buffer
	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
