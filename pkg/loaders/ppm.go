package loaders

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
)

// ppmMaxVal is the only sample range written and accepted
const ppmMaxVal = 255

// maxPPMPixels bounds the image size accepted by ReadPPM so a corrupt header
// cannot force a huge allocation
const maxPPMPixels = 1 << 26

// WritePPM encodes img as a binary (P6) PPM with 8-bit samples
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n%d\n", bounds.Dx(), bounds.Dy(), ppmMaxVal); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	row := make([]byte, 3*bounds.Dx())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			i := 3 * (x - bounds.Min.X)
			row[i], row[i+1], row[i+2] = byte(r>>8), byte(g>>8), byte(b>>8)
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("failed to write PPM pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM pixels: %w", err)
	}
	return nil
}

// SavePPM writes img to path as a binary PPM
func SavePPM(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create PPM file: %w", err)
	}
	if err := WritePPM(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// ReadPPM decodes a binary (P6) PPM with a maximum sample value of 255.
// Header comments starting with '#' are skipped.
func ReadPPM(r io.Reader) (*image.RGBA, error) {
	br := bufio.NewReader(r)

	magic, err := readPPMToken(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read PPM magic: %w", err)
	}
	if magic != "P6" {
		return nil, fmt.Errorf("unsupported PPM format %q, only P6 is supported", magic)
	}

	var header [3]int
	for i, name := range []string{"width", "height", "maxval"} {
		token, err := readPPMToken(br)
		if err != nil {
			return nil, fmt.Errorf("failed to read PPM %s: %w", name, err)
		}
		header[i], err = strconv.Atoi(token)
		if err != nil || header[i] <= 0 {
			return nil, fmt.Errorf("invalid PPM %s %q", name, token)
		}
	}
	width, height, maxVal := header[0], header[1], header[2]
	if maxVal != ppmMaxVal {
		return nil, fmt.Errorf("unsupported PPM maxval %d, only %d is supported", maxVal, ppmMaxVal)
	}

	if width > maxPPMPixels/height {
		return nil, fmt.Errorf("PPM size %dx%d exceeds the limit of %d pixels", width, height, maxPPMPixels)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := make([]byte, 3*width)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, fmt.Errorf("failed to read PPM row %d: %w", y, err)
		}
		for x := 0; x < width; x++ {
			o := img.PixOffset(x, y)
			copy(img.Pix[o:o+3], row[3*x:3*x+3])
			img.Pix[o+3] = 0xff
		}
	}
	return img, nil
}

// readPPMToken returns the next whitespace-delimited header token and
// consumes the single whitespace byte that ends it
func readPPMToken(br *bufio.Reader) (string, error) {
	var token []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(token) > 0 {
				return string(token), nil
			}
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return "", err
		}

		switch {
		case c == '#' && len(token) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", err
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if len(token) > 0 {
				return string(token), nil
			}
		default:
			token = append(token, c)
		}
	}
}
