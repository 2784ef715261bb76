package flavor

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/riff"
)

// RIFF PAL export, so a flavor can be used as a palette in external tools.
//
// typedef struct tagLOGPALETTE {
//   WORD         palVersion;
//   WORD         palNumEntries;
//   PALETTEENTRY palPalEntry[1];
// } LOGPALETTE;

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// WritePAL writes the flavor's colors as a RIFF PAL document.
func (f *Flavor) WritePAL(w io.Writer) error {
	n := 4 + 4 + 4 + 4 + len(f.Entries)*4 // form type + chunk header + palVersion + palNumEntries + 4 bytes/color

	if err := writeBytes(w, riffType[:]); err != nil {
		return fmt.Errorf("could not write RIFF magic: %w", err)
	}
	if err := writeBytes(w, binary.LittleEndian.AppendUint32(nil, uint32(n))); err != nil {
		return fmt.Errorf("could not write document size: %w", err)
	}
	if err := writeBytes(w, palType[:]); err != nil {
		return fmt.Errorf("could not write content type: %w", err)
	}
	if err := writeBytes(w, dataType[:]); err != nil {
		return fmt.Errorf("could not write chunk type: %w", err)
	}
	if err := writeBytes(w, binary.LittleEndian.AppendUint32(nil, uint32(4+len(f.Entries)*4))); err != nil {
		return fmt.Errorf("could not write chunk size: %w", err)
	}
	if err := writeBytes(w, []byte{0x00, 0x03}); err != nil {
		return fmt.Errorf("could not write palette version: %w", err)
	}
	if err := writeBytes(w, binary.LittleEndian.AppendUint16(nil, uint16(len(f.Entries)))); err != nil {
		return fmt.Errorf("could not write number of colors: %w", err)
	}

	for i, e := range f.Entries {
		if err := writeBytes(w, []byte{e.Color.R, e.Color.G, e.Color.B, 0x00}); err != nil {
			return fmt.Errorf("could not write color %d/%d: %w", i, len(f.Entries), err)
		}
	}

	return nil
}

// ReadPAL reads the first palette from a RIFF PAL document.
func ReadPAL(r io.Reader) (color.Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	for {
		id, _, data, err := rd.Next()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("RIFF stream has no data chunk")
			}
			return nil, fmt.Errorf("could not read chunk: %w", err)
		}
		if id != dataType {
			continue
		}
		return readPalette(data)
	}
}

func readPalette(r io.Reader) (color.Palette, error) {
	buf := make([]byte, 4)

	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("could not read palette header: %w", err)
	}

	ver := binary.BigEndian.Uint16(buf[:2])
	if ver != 3 {
		return nil, fmt.Errorf("unsupported palette version: %d", ver)
	}

	count := binary.LittleEndian.Uint16(buf[2:])
	res := make(color.Palette, count)
	for i := uint16(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return res, fmt.Errorf("could not read color %d/%d: %w", i, count, err)
		}
		res[i] = color.RGBA{R: buf[0], G: buf[1], B: buf[2], A: 0xFF}
	}

	return res, nil
}

func writeBytes(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	} else if n != len(b) {
		return fmt.Errorf("wrote only %d/%d bytes", n, len(b))
	}

	return nil
}
