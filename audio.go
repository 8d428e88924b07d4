package basalt

import "unsafe"

// AudioFormat is a native sample format code. The code packs the sample bit
// size into the low byte and float, big-endian, and signed flags into the
// high bits; the exported constants cover every format the native layer
// defines.
type AudioFormat uint16

const (
	AudioU8     AudioFormat = 0x0008 // unsigned 8-bit
	AudioS8     AudioFormat = 0x8008 // signed 8-bit
	AudioU16LSB AudioFormat = 0x0010 // unsigned 16-bit little-endian
	AudioS16LSB AudioFormat = 0x8010 // signed 16-bit little-endian
	AudioU16MSB AudioFormat = 0x1010 // unsigned 16-bit big-endian
	AudioS16MSB AudioFormat = 0x9010 // signed 16-bit big-endian
	AudioS32LSB AudioFormat = 0x8020 // signed 32-bit little-endian
	AudioS32MSB AudioFormat = 0x9020 // signed 32-bit big-endian
	AudioF32LSB AudioFormat = 0x8120 // 32-bit float little-endian
	AudioF32MSB AudioFormat = 0x9120 // 32-bit float big-endian
)

// Native byte order aliases, assigned at package init.
var (
	AudioU16Sys AudioFormat
	AudioS16Sys AudioFormat
	AudioS32Sys AudioFormat
	AudioF32Sys AudioFormat
)

func init() {
	if isLittleEndian {
		AudioU16Sys = AudioU16LSB
		AudioS16Sys = AudioS16LSB
		AudioS32Sys = AudioS32LSB
		AudioF32Sys = AudioF32LSB
	} else {
		AudioU16Sys = AudioU16MSB
		AudioS16Sys = AudioS16MSB
		AudioS32Sys = AudioS32MSB
		AudioF32Sys = AudioF32MSB
	}
}

// BitSize returns the bits per sample of the format.
func (f AudioFormat) BitSize() uint8 { return uint8(f & 0xFF) }

// IsFloat reports whether samples are floating point.
func (f AudioFormat) IsFloat() bool { return f&0x0100 != 0 }

// IsBigEndian reports whether multi-byte samples are big-endian.
func (f AudioFormat) IsBigEndian() bool { return f&0x1000 != 0 }

// IsSigned reports whether integer samples are signed.
func (f AudioFormat) IsSigned() bool { return f&0x8000 != 0 }

// Allowed-changes bits for the native device open call.
const (
	allowFrequencyChange int32 = 0x01
	allowFormatChange    int32 = 0x02
	allowChannelsChange  int32 = 0x04
)

// AudioQueueRequest describes the audio configuration a caller wants. The
// three Allow fields each permit the native layer to substitute a nearby
// value on that one dimension; a dimension whose flag is false either
// matches the request exactly in the opened queue or the open fails.
type AudioQueueRequest struct {
	// Frequency is the sample rate in sample frames per second.
	Frequency int32
	// Format is the sample format.
	Format AudioFormat
	// Channels is the channel count: 1 mono, 2 stereo, up to 8.
	Channels uint8
	// Samples is the device buffer size in sample frames; must be a power
	// of two. Smaller buffers mean lower latency and more frequent refills.
	Samples uint16

	AllowFrequencyChange bool
	AllowFormatChange    bool
	AllowChannelsChange  bool
}

func (r *AudioQueueRequest) allowedChanges() int32 {
	var bits int32
	if r.AllowFrequencyChange {
		bits |= allowFrequencyChange
	}
	if r.AllowFormatChange {
		bits |= allowFormatChange
	}
	if r.AllowChannelsChange {
		bits |= allowChannelsChange
	}
	return bits
}

// AudioQueue owns one opened native audio device in queue mode: the caller
// pushes raw sample data with [AudioQueue.Queue] and the device drains it.
//
// The accessors report the obtained configuration, which is what the device
// actually runs at. It can differ from the request along any dimension the
// request's Allow flags permitted; queued data must be in the obtained
// format, not the requested one.
//
// A new queue starts paused. Call [AudioQueue.Resume] to start playback.
type AudioQueue struct {
	ctx       *Context
	device    uint32
	obtained  nativeAudioSpec
	destroyed bool
}

// OpenAudioQueue opens the default playback device with the requested
// configuration. The device starts paused.
func (c *Context) OpenAudioQueue(req AudioQueueRequest) (*AudioQueue, error) {
	if err := c.ok(); err != nil {
		debugMisuse("OpenAudioQueue", err)
		return nil, err
	}
	desired := nativeAudioSpec{
		freq:     req.Frequency,
		format:   uint16(req.Format),
		channels: req.Channels,
		samples:  req.Samples,
	}
	var obtained nativeAudioSpec
	device := c.api.openAudioDevice(0, 0, &desired, &obtained, req.allowedChanges())
	if device == 0 {
		return nil, lastError(c.api, "OpenAudioQueue")
	}
	q := &AudioQueue{ctx: c, device: device, obtained: obtained}
	c.children.adopt(q)
	Logger().Debug("basalt: audio queue opened",
		"device", device, "freq", obtained.freq, "channels", obtained.channels)
	return q, nil
}

// Frequency returns the obtained sample rate in sample frames per second.
func (q *AudioQueue) Frequency() int32 { return q.obtained.freq }

// Format returns the obtained sample format.
func (q *AudioQueue) Format() AudioFormat { return AudioFormat(q.obtained.format) }

// Channels returns the obtained channel count.
func (q *AudioQueue) Channels() uint8 { return q.obtained.channels }

// Samples returns the obtained device buffer size in sample frames.
func (q *AudioQueue) Samples() uint16 { return q.obtained.samples }

// Silence returns the sample byte value that reads as silence in the
// obtained format, as reported by the native layer.
func (q *AudioQueue) Silence() uint8 { return q.obtained.silence }

// BufferSize returns the device buffer size in bytes, as reported by the
// native layer.
func (q *AudioQueue) BufferSize() uint32 { return q.obtained.size }

// Resume starts or restarts playback. The device drains queued data from
// this point on, playing silence whenever the queue runs dry.
func (q *AudioQueue) Resume() error {
	if err := q.ok(); err != nil {
		debugMisuse("AudioQueue.Resume", err)
		return err
	}
	q.ctx.api.pauseAudioDevice(q.device, 0)
	return nil
}

// Pause stops playback. Queued data is kept, not dropped.
func (q *AudioQueue) Pause() error {
	if err := q.ok(); err != nil {
		debugMisuse("AudioQueue.Pause", err)
		return err
	}
	q.ctx.api.pauseAudioDevice(q.device, 1)
	return nil
}

// Queue appends raw sample data to the playback queue. The data must be in
// the obtained format; an empty slice is a no-op.
func (q *AudioQueue) Queue(data []byte) error {
	if err := q.ok(); err != nil {
		debugMisuse("AudioQueue.Queue", err)
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if q.ctx.api.queueAudio(q.device, unsafe.Pointer(&data[0]), uint32(len(data))) != 0 {
		return lastError(q.ctx.api, "AudioQueue.Queue")
	}
	return nil
}

// QueuedSize reports how many bytes of queued data the device has not yet
// played.
func (q *AudioQueue) QueuedSize() (uint32, error) {
	if err := q.ok(); err != nil {
		debugMisuse("AudioQueue.QueuedSize", err)
		return 0, err
	}
	return q.ctx.api.getQueuedAudioSize(q.device), nil
}

// ClearQueued drops all queued data that has not yet been played.
func (q *AudioQueue) ClearQueued() error {
	if err := q.ok(); err != nil {
		debugMisuse("AudioQueue.ClearQueued", err)
		return err
	}
	q.ctx.api.clearQueuedAudio(q.device)
	return nil
}

// Dispose closes the audio device, dropping any queued data. Idempotent.
func (q *AudioQueue) Dispose() {
	if q == nil || q.destroyed {
		return
	}
	q.ctx.children.orphan(q)
	q.dispose()
}

func (q *AudioQueue) dispose() {
	q.destroyed = true
	q.ctx.api.closeAudioDevice(q.device)
	q.device = 0
	Logger().Debug("basalt: audio queue disposed")
}

func (q *AudioQueue) ok() error {
	if q == nil || q.destroyed {
		return ErrDisposed
	}
	return q.ctx.ok()
}
