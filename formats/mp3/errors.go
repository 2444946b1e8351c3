// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3File wraps any failure of go-mp3 to find a decodable frame.
var ErrNotMP3File = errors.New("not an MP3 file")
