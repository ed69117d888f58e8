package vm

// fixtures_test.go holds bytecode fixtures shared across several test
// files: a small Solidity-compiled Counter contract used to exercise a
// realistic deploy/call/call sequence end to end.

// counterInitCode returns the 252-byte init code for a minimal
// Solidity Counter contract exposing number(), increment(), and
// setNumber(uint256).
func counterInitCode() []byte {
	return []byte{
		96, 128, 96, 64, 82, 96, 236, 128, 97, 0, 16, 95, 57, 95, 243, 254, 96, 128, 96, 64, 82,
		52, 128, 21, 96, 14, 87, 95, 128, 253, 91, 80, 96, 4, 54, 16, 96, 58, 87, 95, 53, 96, 224,
		28, 128, 99, 63, 181, 193, 203, 20, 96, 62, 87, 128, 99, 131, 129, 245, 138, 20, 96, 79,
		87, 128, 99, 208, 157, 224, 138, 20, 96, 104, 87, 91, 95, 128, 253, 91, 96, 77, 96, 73, 54,
		96, 4, 96, 125, 86, 91, 95, 85, 86, 91, 0, 91, 96, 86, 95, 84, 129, 86, 91, 96, 64, 81,
		144, 129, 82, 96, 32, 1, 96, 64, 81, 128, 145, 3, 144, 243, 91, 96, 77, 95, 128, 84, 144,
		128, 96, 118, 131, 96, 147, 86, 91, 145, 144, 80, 85, 80, 86, 91, 95, 96, 32, 130, 132, 3,
		18, 21, 96, 140, 87, 95, 128, 253, 91, 80, 53, 145, 144, 80, 86, 91, 95, 96, 1, 130, 1, 96,
		175, 87, 99, 78, 72, 123, 113, 96, 224, 27, 95, 82, 96, 17, 96, 4, 82, 96, 36, 95, 253, 91,
		80, 96, 1, 1, 144, 86, 254, 162, 100, 105, 112, 102, 115, 88, 34, 18, 32, 139, 36, 42, 16,
		138, 0, 116, 178, 9, 210, 212, 42, 110, 151, 185, 78, 178, 48, 164, 149, 67, 3, 207, 184,
		215, 70, 118, 35, 201, 52, 39, 95, 100, 115, 111, 108, 99, 67, 0, 8, 26, 0, 51,
	}
}
