package render

// TextureUnits hands out texture unit indices in increasing order. A unit is
// never handed out twice.
type TextureUnits struct {
	next uint32
}

// Next returns the next free unit
func (u *TextureUnits) Next() uint32 {
	unit := u.next
	u.next++
	return unit
}

// Used returns how many units have been handed out
func (u *TextureUnits) Used() uint32 {
	return u.next
}
