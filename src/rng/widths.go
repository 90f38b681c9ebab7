package rng

// Fixed-width entry points. All bounds are [min, max).

func Int8(src Source, min, max int8) (int8, error)    { return Uniform(src, min, max) }
func Int16(src Source, min, max int16) (int16, error) { return Uniform(src, min, max) }
func Int32(src Source, min, max int32) (int32, error) { return Uniform(src, min, max) }
func Int64(src Source, min, max int64) (int64, error) { return Uniform(src, min, max) }
func Int(src Source, min, max int) (int, error)       { return Uniform(src, min, max) }

func Uint8(src Source, min, max uint8) (uint8, error)    { return Uniform(src, min, max) }
func Uint16(src Source, min, max uint16) (uint16, error) { return Uniform(src, min, max) }
func Uint32(src Source, min, max uint32) (uint32, error) { return Uniform(src, min, max) }
func Uint64(src Source, min, max uint64) (uint64, error) { return Uniform(src, min, max) }
func Uint(src Source, min, max uint) (uint, error)       { return Uniform(src, min, max) }
