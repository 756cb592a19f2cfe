package clovy

// GeneralInfo is the GEN8 chunk: top-level project metadata and the
// primary source of version information. Decoding it is what first moves
// V away from its (1,0,0,0) default for most real containers.
type GeneralInfo struct {
	DisableDebug     bool
	FormatID         int8
	Unknown          int16
	Filename         []byte
	Config           []byte
	LastObjectID     int32
	LastTileID       int32
	GameID           int32
	LegacyGUID       [16]byte
	GameName         []byte
	Major            int32
	Minor            int32
	Release          int32
	Build            int32
	DefaultWindowW   int32
	DefaultWindowH   int32
	InfoFlags        uint32
	LicenseCRC32     int32
	LicenseMD5       [16]byte
	Timestamp        int64
	DisplayName      []byte
	ActiveTargets    int64
	FunctionClasses  uint64
	SteamAppID       int32
	DebuggerPort     int32
	RoomOrder        []int32
	RandomUID        [5]int64
	FPS              float32
	AllowStatistics  bool
	GameGUID         [16]byte
}

func decodeGeneralInfo(r *Reader) (*GeneralInfo, error) {
	g := &GeneralInfo{}
	var err error

	if g.DisableDebug, err = r.ReadBool(); err != nil {
		return nil, err
	}
	var fid uint8
	if fid, err = r.ReadU8(); err != nil {
		return nil, err
	}
	g.FormatID = int8(fid)
	if g.Unknown, err = r.ReadI16(); err != nil {
		return nil, err
	}
	if g.Filename, err = r.ReadPointerString(false); err != nil {
		return nil, err
	}
	if g.Config, err = r.ReadPointerString(false); err != nil {
		return nil, err
	}
	if g.LastObjectID, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if g.LastTileID, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if g.GameID, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if b, err := r.ReadBytes(16); err != nil {
		return nil, err
	} else {
		copy(g.LegacyGUID[:], b)
	}
	if g.GameName, err = r.ReadPointerString(false); err != nil {
		return nil, err
	}
	if g.Major, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if g.Minor, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if g.Release, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if g.Build, err = r.ReadI32(); err != nil {
		return nil, err
	}
	r.Version.Set(g.Major, g.Minor, g.Release, g.Build)
	r.Version.FormatID = g.FormatID

	if g.DefaultWindowW, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if g.DefaultWindowH, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if g.InfoFlags, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if g.LicenseCRC32, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if b, err := r.ReadBytes(16); err != nil {
		return nil, err
	} else {
		copy(g.LicenseMD5[:], b)
	}
	if g.Timestamp, err = r.ReadI64(); err != nil {
		return nil, err
	}
	if g.DisplayName, err = r.ReadPointerString(false); err != nil {
		return nil, err
	}
	if g.ActiveTargets, err = r.ReadI64(); err != nil {
		return nil, err
	}
	if g.FunctionClasses, err = r.ReadU64(); err != nil {
		return nil, err
	}
	if g.SteamAppID, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if g.FormatID >= 14 {
		if g.DebuggerPort, err = r.ReadI32(); err != nil {
			return nil, err
		}
	}
	var roomOrderCount int32
	if roomOrderCount, err = r.ReadI32(); err != nil {
		return nil, err
	}
	g.RoomOrder = make([]int32, roomOrderCount)
	for i := range g.RoomOrder {
		if g.RoomOrder[i], err = r.ReadI32(); err != nil {
			return nil, err
		}
	}

	if g.Major >= 2 {
		for i := range g.RandomUID {
			if g.RandomUID[i], err = r.ReadI64(); err != nil {
				return nil, err
			}
		}
		if g.FPS, err = r.ReadF32(); err != nil {
			return nil, err
		}
		if g.AllowStatistics, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if b, err := r.ReadBytes(16); err != nil {
			return nil, err
		} else {
			copy(g.GameGUID[:], b)
		}
	}

	return g, nil
}

func encodeGeneralInfo(w *Writer, g *GeneralInfo) error {
	var err error
	if err = w.WriteBool(g.DisableDebug); err != nil {
		return err
	}
	if err = w.WriteU8(uint8(g.FormatID)); err != nil {
		return err
	}
	if err = w.WriteI16(g.Unknown); err != nil {
		return err
	}
	if err = w.WritePointerString(g.Filename); err != nil {
		return err
	}
	if err = w.WritePointerString(g.Config); err != nil {
		return err
	}
	if err = w.WriteI32(g.LastObjectID); err != nil {
		return err
	}
	if err = w.WriteI32(g.LastTileID); err != nil {
		return err
	}
	if err = w.WriteI32(g.GameID); err != nil {
		return err
	}
	if err = w.WriteBytes(g.LegacyGUID[:]); err != nil {
		return err
	}
	if err = w.WritePointerString(g.GameName); err != nil {
		return err
	}
	if err = w.WriteI32(g.Major); err != nil {
		return err
	}
	if err = w.WriteI32(g.Minor); err != nil {
		return err
	}
	if err = w.WriteI32(g.Release); err != nil {
		return err
	}
	if err = w.WriteI32(g.Build); err != nil {
		return err
	}
	if err = w.WriteI32(g.DefaultWindowW); err != nil {
		return err
	}
	if err = w.WriteI32(g.DefaultWindowH); err != nil {
		return err
	}
	if err = w.WriteU32(g.InfoFlags); err != nil {
		return err
	}
	if err = w.WriteI32(g.LicenseCRC32); err != nil {
		return err
	}
	if err = w.WriteBytes(g.LicenseMD5[:]); err != nil {
		return err
	}
	if err = w.WriteI64(g.Timestamp); err != nil {
		return err
	}
	if err = w.WritePointerString(g.DisplayName); err != nil {
		return err
	}
	if err = w.WriteI64(g.ActiveTargets); err != nil {
		return err
	}
	if err = w.WriteU64(g.FunctionClasses); err != nil {
		return err
	}
	if err = w.WriteI32(g.SteamAppID); err != nil {
		return err
	}
	if g.FormatID >= 14 {
		if err = w.WriteI32(g.DebuggerPort); err != nil {
			return err
		}
	}
	if err = w.WriteI32(int32(len(g.RoomOrder))); err != nil {
		return err
	}
	for _, id := range g.RoomOrder {
		if err = w.WriteI32(id); err != nil {
			return err
		}
	}
	if g.Major >= 2 {
		for _, v := range g.RandomUID {
			if err = w.WriteI64(v); err != nil {
				return err
			}
		}
		if err = w.WriteF32(g.FPS); err != nil {
			return err
		}
		if err = w.WriteWideBool(g.AllowStatistics); err != nil {
			return err
		}
		if err = w.WriteBytes(g.GameGUID[:]); err != nil {
			return err
		}
	}
	return nil
}

// InfoFlags bits, preserved as a raw bitfield per spec.md §6 ("round-trip
// as raw bits, do not drop unknown bits").
const (
	InfoFlagFullscreen uint32 = 1 << iota
	InfoFlagSyncVertex1
	InfoFlagSyncVertex2
	InfoFlagInterpolate
	_
	InfoFlagScale
	InfoFlagShowCursor
	InfoFlagSizeable
	InfoFlagScreenKey
	InfoFlagSyncVertex3
	InfoFlagStudioVersionB1
	InfoFlagStudioVersionB2
	InfoFlagStudioVersionB3
	InfoFlagSteamEnabled
	InfoFlagLocalDataEnabled
	InfoFlagBorderlessWindow
)

// FunctionClassification bits, kept as a raw u64 bitfield for the same
// reason InfoFlags is.
const (
	FuncClassInternet uint64 = 1 << iota
	FuncClassJoystick
	FuncClassRegistry
	FuncClassUnused1
	FuncClassEngine
	FuncClassFileFind
	FuncClassGMFile
	FuncClassFileSystem
)
