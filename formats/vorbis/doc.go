// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Reads are always a whole number of frames: a dst whose length is not a
// multiple of Channels() is only filled up to the last complete frame.
package vorbis
