package raster

// Delta-row decompression, PCL compression method 1030. A block holds
// a row count followed by that many row records. Each record is a
// list of edits applied to the previous row (the seed row) in place:
// a repeat edit fills a run with one byte, a substitute edit copies
// literal bytes from the stream. Offsets are relative to the position
// reached by the previous edit, so unchanged leading bytes of the
// seed row are skipped rather than re-encoded.

func (d *Decoder) readBlock(cur *blockCursor, p *Page) error {
	hi, err := cur.next()
	if err != nil {
		return err
	}
	lo, err := cur.next()
	if err != nil {
		return err
	}
	count := int(hi)*256 + int(lo)
	for i := 0; i < count; i++ {
		if err := d.readRow(cur, p); err != nil {
			return err
		}
	}
	return nil
}

func (d *Decoder) readRow(cur *blockCursor, p *Page) error {
	numEdits, err := cur.next()
	if err != nil {
		return err
	}
	if numEdits == blankRow {
		d.line = d.line[:0]
	} else {
		d.lineOffset = 0
		for i := 0; i < int(numEdits); i++ {
			if err := d.readEdit(cur); err != nil {
				return err
			}
		}
	}
	p.rows = append(p.rows, append([]byte(nil), d.line...))
	return nil
}

func (d *Decoder) readEdit(cur *blockCursor) error {
	cmd, err := cur.next()
	if err != nil {
		return err
	}
	if cmd&0x80 != 0 {
		return d.readRepeat(cmd, cur)
	}
	return d.readSubstitute(cmd, cur)
}

func (d *Decoder) readRepeat(cmd byte, cur *blockCursor) error {
	offset := int(cmd>>5) & 3
	if offset == 3 {
		n, err := readOverflow(cur)
		if err != nil {
			return err
		}
		offset += n
	}
	count := int(cmd) & 31
	if count == 31 {
		n, err := readOverflow(cur)
		if err != nil {
			return err
		}
		count += n
	}
	count += 2
	data, err := cur.next()
	if err != nil {
		return err
	}
	if err := d.growLine(offset, count); err != nil {
		return err
	}
	d.lineOffset += offset
	for i := 0; i < count; i++ {
		d.line[d.lineOffset+i] = data
	}
	d.lineOffset += count
	return nil
}

func (d *Decoder) readSubstitute(cmd byte, cur *blockCursor) error {
	offset := int(cmd>>3) & 15
	if offset == 15 {
		n, err := readOverflow(cur)
		if err != nil {
			return err
		}
		offset += n
	}
	count := int(cmd) & 7
	if count == 7 {
		n, err := readOverflow(cur)
		if err != nil {
			return err
		}
		count += n
	}
	count++
	if err := d.growLine(offset, count); err != nil {
		return err
	}
	d.lineOffset += offset
	for i := 0; i < count; i++ {
		ch, err := cur.next()
		if err != nil {
			return err
		}
		d.line[d.lineOffset+i] = ch
	}
	d.lineOffset += count
	return nil
}

// growLine extends the seed line so that an edit ending at
// lineOffset+offset+count fits, zero-filling the new tail.
func (d *Decoder) growLine(offset, count int) error {
	end := d.lineOffset + offset + count
	if end > len(d.line) {
		if end > MaxLineSize {
			return ErrLineOverflow
		}
		d.line = append(d.line, make([]byte, end-len(d.line))...)
	}
	return nil
}

// readOverflow accumulates the extension of an offset or count field
// that saturated its fixed width: bytes are summed until one smaller
// than 255 terminates the run. The terminator is included in the sum.
func readOverflow(cur *blockCursor) (int, error) {
	sum := 0
	for {
		ch, err := cur.next()
		if err != nil {
			return 0, err
		}
		sum += int(ch)
		if ch != 255 {
			return sum, nil
		}
	}
}
