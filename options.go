package banhammer

type options struct {
	hasher Hasher
}

// Option configures a BloomFilter or HashTable at construction.
type Option func(*options)

// WithHasher replaces the default MurmurHasher.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}

func makeOptions(opts []Option) options {
	o := options{hasher: MurmurHasher{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
