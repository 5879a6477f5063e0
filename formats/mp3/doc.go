// SPDX-License-Identifier: EPL-2.0

// Package mp3 parses MPEG audio Layer III streams down to their quantized
// spectra without running the synthesis half of a decoder.
//
// # Parsing
//
// A Parser walks the frames of an in-memory file in order. It skips any
// leading ID3v2 tags when given the offset from ID3Offset, ignores a
// trailing ID3v1 tag, resynchronizes on junk between frames and tracks
// the bit reservoir so main data that begins in earlier frames is
// reassembled:
//
//	data, _ := os.ReadFile("input.mp3")
//	p := mp3.NewParser(data, mp3.ID3Offset(data).Offset)
//	for {
//	    f, err := p.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    var fe *mp3.FrameError
//	    if errors.As(err, &fe) {
//	        continue // frame skipped, keep going
//	    }
//	    // f.Spectra.At(gr, ch).Samples holds 576 quantized values
//	}
//
// # Failure handling
//
// Parsing is fail-soft. A frame whose main data cannot be fully decoded
// is still returned with Err set and a best-effort spectrum: samples up
// to the failure point and zeros after it. Frames that cannot be used at
// all, such as Layer I/II frames or frames with truncated side
// information, are reported as *FrameError and parsing continues after
// them.
//
// # Supported streams
//
//   - MPEG-1, MPEG-2 and MPEG-2.5 Layer III
//   - mono, stereo, joint stereo and dual channel
//   - long, short and mixed blocks
//   - CRC protected frames
//
// Free format bitrate streams are rejected.
//
// # PCM decoding
//
// Decoder renders MP3 input to float32 PCM through
// github.com/hajimehoshi/go-mp3. It is independent from Parser and is
// used for listening copies only.
package mp3
