package clovy

// Format probes are bounded, position-restoring heuristics that peek ahead
// in a chunk's body for a byte pattern only a specific engine version could
// have produced, then call VersionInfo.Set upward. They never return an
// error on mismatch: a probe that doesn't recognize what it sees leaves V
// exactly where it was, per spec.md §9 ("probes are silent on mismatch;
// they may only move the version forward"). Both probes restore the
// stream position on every exit path.

// probeEXTN peeks an EXTN chunk for the 2022.6 layout (where an
// Extension's files/options become pointer-objects rather than an inline
// PL<ExtensionFile>), per spec.md §4.5. Only meaningful in the
// 2.3.0.0 <= V < 2022.6.0.0 window.
func probeEXTN(r *Reader, chunk Chunk) error {
	if !r.Version.AtLeast(2, 3, 0, 0) || r.Version.AtLeast(2022, 6, 0, 0) {
		return nil
	}
	start, err := r.StreamPosition()
	if err != nil {
		return err
	}
	defer func() { _ = r.SeekTo(start) }()

	ok, _ := tryProbeEXTN(r, chunk, start)
	if ok {
		r.Version.Set(2022, 6, 0, 0)
	}
	return nil
}

func tryProbeEXTN(r *Reader, chunk Chunk, start int64) (bool, error) {
	count, err := r.ReadU32()
	if err != nil || count < 1 {
		return false, nil
	}
	firstExtn, err := r.ReadU32()
	if err != nil {
		return false, nil
	}
	if int64(firstExtn) <= start || int64(firstExtn) >= chunk.EndOffset {
		return false, nil
	}
	if err := r.SeekTo(int64(firstExtn) + 12); err != nil {
		return false, nil
	}
	innerA, err := r.ReadU32()
	if err != nil {
		return false, nil
	}
	innerB, err := r.ReadU32()
	if err != nil {
		return false, nil
	}
	pos, err := r.StreamPosition()
	if err != nil {
		return false, nil
	}
	if int64(innerA) != pos {
		return false, nil
	}
	if !(int64(innerB) > pos && int64(innerB) < chunk.EndOffset) {
		return false, nil
	}

	if err := r.SeekTo(int64(innerB)); err != nil {
		return false, nil
	}
	optionCount, err := r.ReadU32()
	if err != nil {
		return false, nil
	}
	if optionCount < 1 {
		return false, nil
	}
	if err := r.SeekRelative(int64(optionCount-1) * 4); err != nil {
		return false, nil
	}
	lastOptOffset, err := r.ReadU32()
	if err != nil {
		return false, nil
	}
	if err := r.SeekTo(int64(lastOptOffset)); err != nil {
		return false, nil
	}
	trailing, err := r.ReadU32()
	if err != nil {
		return false, nil
	}
	end := int64(trailing) + 12
	if end < start || end > chunk.EndOffset {
		return false, nil
	}

	if count == 1 {
		if err := r.SeekTo(end + 16); err != nil {
			return false, nil
		}
		if err := r.Pad(16); err != nil {
			return false, nil
		}
		finalPos, err := r.StreamPosition()
		if err != nil {
			return false, nil
		}
		return finalPos == end+16 || finalPos == end, nil
	}

	finalPos, err := r.StreamPosition()
	if err != nil {
		return false, nil
	}
	return finalPos == end, nil
}

// probeFont peeks a FONT chunk for the glyph layout introduced in 2022.2,
// per spec.md §4.5; the chunk's trailing 512-byte padding block is excluded
// from the bounds it checks against. Only meaningful in the
// 2.3.0.0 <= V < 2022.2.0.0 window. The probe decodes just enough of the
// old, smaller glyph layout to tell whether it actually fits the bytes on
// disk; if it doesn't, the chunk must be using the newer, larger layout,
// and the version is upgraded forward.
func probeFont(r *Reader, chunk Chunk) error {
	if !r.Version.AtLeast(2, 3, 0, 0) || r.Version.AtLeast(2022, 2, 0, 0) {
		return nil
	}
	start, err := r.StreamPosition()
	if err != nil {
		return err
	}
	defer func() { _ = r.SeekTo(start) }()

	upgrade, err := tryProbeFont(r, chunk)
	if err == nil && upgrade {
		r.Version.Set(2022, 2, 0, 0)
	}
	return nil
}

// tryProbeFont reports whether the old (pre-2022.2) glyph layout fails to
// validate against chunk, in which case probeFont must upgrade the
// version. A font_count of zero makes no claim either way: the original
// decoder doesn't run the check at all in that case, so no upgrade fires.
func tryProbeFont(r *Reader, chunk Chunk) (bool, error) {
	lowerBound, err := r.StreamPosition()
	if err != nil {
		return false, err
	}
	count, err := r.ReadU32()
	if err != nil {
		return false, err
	}
	if count < 1 {
		return false, nil
	}
	upperBound := chunk.EndOffset - 512

	firstFont, err := r.ReadU32()
	if err != nil {
		return false, nil
	}
	var endPtr int64
	if count >= 2 {
		second, err := r.ReadU32()
		if err != nil {
			return false, nil
		}
		endPtr = int64(second)
	} else {
		endPtr = upperBound
	}

	if err := r.SeekTo(int64(firstFont) + 44); err != nil {
		return false, nil
	}
	glyphCount, err := r.ReadU32()
	if err != nil {
		return false, nil
	}

	invalid := false
	if glyphCount > 0 {
		glyphPtrOffset, err := r.StreamPosition()
		if err != nil {
			return false, nil
		}
		if glyphCount >= 2 {
			rawFirst, err := r.ReadU32()
			if err != nil {
				return false, nil
			}
			firstGlyph := int64(rawFirst) + 14
			secondGlyph, err := r.ReadU32()
			if err != nil {
				return false, nil
			}
			if firstGlyph < lowerBound || firstGlyph > upperBound ||
				int64(secondGlyph) < lowerBound || int64(secondGlyph) > upperBound {
				invalid = true
			}
			if !invalid {
				if err := r.SeekTo(firstGlyph); err != nil {
					return false, nil
				}
				kerningLen, err := r.ReadU16()
				if err != nil {
					return false, nil
				}
				if err := r.SeekRelative(int64(kerningLen) * 4); err != nil {
					return false, nil
				}
				pos, err := r.StreamPosition()
				if err != nil {
					return false, nil
				}
				if pos != int64(secondGlyph) {
					invalid = true
				}
			}
		}
		if !invalid {
			if err := r.SeekTo(glyphPtrOffset + int64(glyphCount-1)*4); err != nil {
				return false, nil
			}
			lastGlyph, err := r.ReadU32()
			if err != nil {
				return false, nil
			}
			if int64(lastGlyph) < lowerBound || int64(lastGlyph) > upperBound {
				invalid = true
			}
			if !invalid {
				if err := r.SeekTo(int64(lastGlyph)); err != nil {
					return false, nil
				}
				kerningLen2, err := r.ReadU16()
				if err != nil {
					return false, nil
				}
				if err := r.SeekRelative(int64(kerningLen2) * 4); err != nil {
					return false, nil
				}
				if count == 1 && r.Version.AlignChunksTo16 {
					if err := r.Pad(16); err != nil {
						return false, nil
					}
				}
			}
		}
	}

	finalPos, err := r.StreamPosition()
	if err != nil {
		return false, nil
	}
	return invalid || finalPos != endPtr, nil
}
