package server

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"
	"strings"

	"devtoolbox/internal/colormath"
	"devtoolbox/internal/imaging"
)

var errNoImage = errors.New(`multipart field "image" is required`)

// readImage decodes the "image" field of a multipart upload.
func (s *Server) readImage(w http.ResponseWriter, r *http.Request) (*imaging.Decoded, bool) {
	if err := r.ParseMultipartForm(s.Config.MaxUploadBytes()); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			unsupportedMediaType(w, r, r.Header.Get("Content-Type"))
			return nil, false
		}
		toolError(w, r, err)
		return nil, false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		badRequest(w, r, errNoImage)
		return nil, false
	}
	defer file.Close()

	// Browsers send application/octet-stream for unknown extensions, so
	// sniff when the part does not say it is an image.
	br := bufio.NewReader(file)
	contentType := header.Header.Get("Content-Type")
	if !imaging.IsImageType(contentType) {
		head, _ := br.Peek(512)
		contentType = http.DetectContentType(head)
	}

	dec, err := imaging.Decode(br, contentType, imaging.Limits{
		MaxBytes:  s.Config.MaxUploadBytes(),
		MaxPixels: s.Config.MaxImagePixels,
	})
	if err != nil {
		toolError(w, r, err)
		return nil, false
	}
	return dec, true
}

func formInt(r *http.Request, key string, def int) (int, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}

func (s *Server) handleImageCompress(w http.ResponseWriter, r *http.Request) {
	dec, ok := s.readImage(w, r)
	if !ok {
		return
	}

	quality, err := formInt(r, "quality", imaging.DefaultQuality)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	maxWidth, err := formInt(r, "max_width", imaging.DefaultMaxWidth)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	format, err := imaging.ParseFormat(r.FormValue("format"))
	if err != nil {
		toolError(w, r, err)
		return
	}

	res, err := imaging.Compress(r.Context(), dec.Image, dec.Size, imaging.CompressOptions{
		Quality:  quality,
		MaxWidth: maxWidth,
		Format:   format,
	})
	if err != nil {
		toolError(w, r, err)
		return
	}
	MetricImagePixelsTotal.WithLabelValues("compress").Add(float64(dec.Width * dec.Height))

	if report, _ := strconv.ParseBool(r.FormValue("report")); report {
		writeJSON(w, http.StatusOK, CompressReport{
			CompressResult: *res,
			Data:           base64.StdEncoding.EncodeToString(res.Data),
		})
		return
	}

	h := w.Header()
	h.Set("Content-Type", res.Format.ContentType())
	h.Set("Content-Length", strconv.Itoa(len(res.Data)))
	h.Set("X-Original-Size", strconv.FormatInt(res.OriginalSize, 10))
	h.Set("X-Compressed-Size", strconv.FormatInt(res.CompressedSize, 10))
	h.Set("X-Compression-Ratio", strconv.Itoa(res.Ratio))
	h.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="compressed.%s"`, res.Format))
	w.WriteHeader(http.StatusOK)
	w.Write(res.Data)
}

// CompressReport is the JSON form of a compression, with the image
// inlined as base64.
type CompressReport struct {
	imaging.CompressResult
	Data string `json:"data"`
}

func (s *Server) handleImageBlindness(w http.ResponseWriter, r *http.Request) {
	dec, ok := s.readImage(w, r)
	if !ok {
		return
	}
	d, err := colormath.ParseDeficiency(r.FormValue("deficiency"))
	if err != nil {
		toolError(w, r, err)
		return
	}

	out, err := imaging.SimulateImage(r.Context(), dec.Image, d)
	if err != nil {
		toolError(w, r, err)
		return
	}
	MetricImagePixelsTotal.WithLabelValues("blindness").Add(float64(dec.Width * dec.Height))

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		internalServerError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// PickResponse is the sampled pixel and the updated swatch history.
type PickResponse struct {
	Color    imaging.PickedColor `json:"color"`
	Swatches []string            `json:"swatches"`
}

func (s *Server) handleImagePick(w http.ResponseWriter, r *http.Request) {
	dec, ok := s.readImage(w, r)
	if !ok {
		return
	}
	x, err := formInt(r, "x", 0)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	y, err := formInt(r, "y", 0)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	picked, err := imaging.PickColor(dec.Image, x, y)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	MetricImagePixelsTotal.WithLabelValues("pick").Add(1)

	var history []string
	for _, h := range strings.Split(r.FormValue("history"), ",") {
		if h = strings.TrimSpace(h); colormath.IsHex(h) {
			history = append(history, h)
		}
	}
	writeJSON(w, http.StatusOK, PickResponse{Color: picked, Swatches: imaging.AddSwatch(history, picked.Hex)})
}
