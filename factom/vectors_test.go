package factom_test

// Address vectors shared by the tests in this package.
const (
	keyF8dd = "f8dd9d8af5d7cabd2b370be9f91bdd9021acb2eb9feaa39a78375e31f978377a"
	keyOaa3 = "0aa3bd0926fc64285abfdc1dab15861fd5c406cb6a6a966752555a738d8d99c3"

	// Public key of the seed keyOaa3.
	pubOaa3 = "d521851f839bd859dddf8f47583e45b625fcf69d3fc6081234cd889227d6edfd"
	// RCD hash of pubOaa3.
	rcdOaa3 = "421cb2fea1db8767b3d77e269e59de330178e5dd978ca942604152c33c9566b7"

	ecF8dd = "EC3ekiKnW3DpzqTzAEkSyrAvmC3mZ6zwrmEUmf7AfcVPJahnHQFq"
	fsF8dd = "Fs3D7FNgvCV6P3bmFnJggAE3uQ9ykQufwzwSKgbrzQtjeiPnZW6g"

	fsOaa3 = "Fs1QC5mqxhwDYRGuG7J21X6HtmKwaDhyte8HfAK2A2o6fLYF4ite"
	faOaa3 = "FA2UCJVA3Cpp665LkWWTPaRDEYLMraQsbqgbaa5muT7PYzVhWXMU"
	esOaa3 = "Es2WLtdNiTuBmA3Z7nUFPSK4AVzZFbU93LPmR7B1JK9Xjcfxt7YC"
	ecOaa3 = "EC3P1v9UpTMGjng8qbMiDcrk3VpJZGqW8bEPshKvcqRr3GCyPQna"

	// The zero payload encoded with each prefix.
	faZero = "FA1y5ZGuHSLmf2TqNf6hVMkPiNGyQpQDTFJvDLRkKQaoPo4bmbgu"
	fsZero = "Fs1KWJrpLdfucvmYwN2nWrwepLn8ercpMbzXshd1g8zyhKXLVLWj"
	ecZero = "EC1m9mouvUQeEidmqpUYpYtXg8fvTYi6GNHaKg8KMLbdMBrFfmUa"
	esZero = "Es2Rf7iM6PdsqfYCo3D1tnAR65SkLENyWJG1deUzpRMQmbh9F3eG"

	// FA address of the zero seed.
	faZeroSeed = "FA1zT4aFpEvcnPqPCigB3fvGu4Q4mTXY22iiuV69DqE1pNhdF2MC"

	// Valid checksum, but the prefix 0x5fb2 is unknown even though the
	// string starts with "FA".
	unknownPrefix = "FA3upjWMKHmStAHR5ZgKVK4zVHPb8U74L2wzKaaSDQEonHeWQ7t5"
	// 38 bytes, but the checksum does not match.
	badChecksum = "FA2zT4aFpEvcnPqPCigB3fvGu4Q4mTXY22iiuV69DqE1pNhdF2MC"
	// Contains '0' and 'l' which are not in the base58 alphabet.
	badSymbol = "FA2zT4aFpEvcnPqPCigB3fvGu4Q4mTXY22l0uV69DqE1pNhdF2MC"
)
