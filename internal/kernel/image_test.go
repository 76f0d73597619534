package kernel

import (
	"testing"

	"github.com/tarusov/etwkernel/internal/provider"
	"github.com/tarusov/etwkernel/value"
)

var imageUnloadPayloadV2 = []byte{
	0x00, 0x00, 0x78, 0xF7, 0xFE, 0x07, 0x00, 0x00, 0x00, 0x20, 0x0E, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x44, 0x17, 0x00, 0x00, 0xA1, 0x77, 0x0E, 0x00, 0xFE, 0xDE, 0x5B, 0x4A, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x78, 0xF7, 0xFE, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x5C, 0x00, 0x57, 0x00, 0x69, 0x00, 0x6E, 0x00,
	0x64, 0x00, 0x6F, 0x00, 0x77, 0x00, 0x73, 0x00, 0x5C, 0x00, 0x53, 0x00, 0x79, 0x00, 0x73, 0x00,
	0x74, 0x00, 0x65, 0x00, 0x6D, 0x00, 0x33, 0x00, 0x32, 0x00, 0x5C, 0x00, 0x77, 0x00, 0x62, 0x00,
	0x65, 0x00, 0x6D, 0x00, 0x5C, 0x00, 0x66, 0x00, 0x61, 0x00, 0x73, 0x00, 0x74, 0x00, 0x70, 0x00,
	0x72, 0x00, 0x6F, 0x00, 0x78, 0x00, 0x2E, 0x00, 0x64, 0x00, 0x6C, 0x00, 0x6C, 0x00, 0x00, 0x00,
}

var imageUnloadPayloadV3 = []byte{
	0x00, 0x00, 0xF3, 0xA3, 0xFC, 0x7F, 0x00, 0x00, 0x00, 0x40, 0x0E, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xF8, 0x07, 0x00, 0x00, 0x7B, 0x2E, 0x0E, 0x00, 0xB8, 0xDE, 0x15, 0x52, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xF3, 0xA3, 0xFC, 0x7F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x5C, 0x00, 0x57, 0x00, 0x69, 0x00, 0x6E, 0x00,
	0x64, 0x00, 0x6F, 0x00, 0x77, 0x00, 0x73, 0x00, 0x5C, 0x00, 0x53, 0x00, 0x79, 0x00, 0x73, 0x00,
	0x74, 0x00, 0x65, 0x00, 0x6D, 0x00, 0x33, 0x00, 0x32, 0x00, 0x5C, 0x00, 0x77, 0x00, 0x62, 0x00,
	0x65, 0x00, 0x6D, 0x00, 0x5C, 0x00, 0x66, 0x00, 0x61, 0x00, 0x73, 0x00, 0x74, 0x00, 0x70, 0x00,
	0x72, 0x00, 0x6F, 0x00, 0x78, 0x00, 0x2E, 0x00, 0x64, 0x00, 0x6C, 0x00, 0x6C, 0x00, 0x00, 0x00,
}

var imageDCStartPayload32bitsV0 = []byte{
	0x00, 0x00, 0x16, 0x01, 0x00, 0xE0, 0x19, 0x00, 0x43, 0x00, 0x3A, 0x00, 0x5C, 0x00, 0x63, 0x00,
	0x6F, 0x00, 0x64, 0x00, 0x65, 0x00, 0x5C, 0x00, 0x73, 0x00, 0x61, 0x00, 0x77, 0x00, 0x62, 0x00,
	0x75, 0x00, 0x63, 0x00, 0x6B, 0x00, 0x5C, 0x00, 0x73, 0x00, 0x72, 0x00, 0x63, 0x00, 0x5C, 0x00,
	0x73, 0x00, 0x61, 0x00, 0x77, 0x00, 0x62, 0x00, 0x75, 0x00, 0x63, 0x00, 0x6B, 0x00, 0x5C, 0x00,
	0x44, 0x00, 0x65, 0x00, 0x62, 0x00, 0x75, 0x00, 0x67, 0x00, 0x5C, 0x00, 0x74, 0x00, 0x65, 0x00,
	0x73, 0x00, 0x74, 0x00, 0x5F, 0x00, 0x70, 0x00, 0x72, 0x00, 0x6F, 0x00, 0x67, 0x00, 0x72, 0x00,
	0x61, 0x00, 0x6D, 0x00, 0x2E, 0x00, 0x65, 0x00, 0x78, 0x00, 0x65, 0x00, 0x00, 0x00,
}

var imageDCStartPayload32bitsV1 = []byte{
	0x00, 0x00, 0x16, 0x01, 0x00, 0xE0, 0x19, 0x00, 0xDC, 0x1D, 0x00, 0x00, 0x43, 0x00, 0x3A, 0x00,
	0x5C, 0x00, 0x63, 0x00, 0x6F, 0x00, 0x64, 0x00, 0x65, 0x00, 0x5C, 0x00, 0x73, 0x00, 0x61, 0x00,
	0x77, 0x00, 0x62, 0x00, 0x75, 0x00, 0x63, 0x00, 0x6B, 0x00, 0x5C, 0x00, 0x73, 0x00, 0x72, 0x00,
	0x63, 0x00, 0x5C, 0x00, 0x73, 0x00, 0x61, 0x00, 0x77, 0x00, 0x62, 0x00, 0x75, 0x00, 0x63, 0x00,
	0x6B, 0x00, 0x5C, 0x00, 0x44, 0x00, 0x65, 0x00, 0x62, 0x00, 0x75, 0x00, 0x67, 0x00, 0x5C, 0x00,
	0x74, 0x00, 0x65, 0x00, 0x73, 0x00, 0x74, 0x00, 0x5F, 0x00, 0x70, 0x00, 0x72, 0x00, 0x6F, 0x00,
	0x67, 0x00, 0x72, 0x00, 0x61, 0x00, 0x6D, 0x00, 0x2E, 0x00, 0x65, 0x00, 0x78, 0x00, 0x65, 0x00,
	0x00, 0x00,
}

var imageDCStartPayload32bitsV2 = []byte{
	0x00, 0x00, 0x16, 0x01, 0x00, 0xE0, 0x19, 0x00, 0xDC, 0x1D, 0x00, 0x00, 0x67, 0x68, 0xA2, 0x4B,
	0xBE, 0xBA, 0xFE, 0xCA, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x43, 0x00, 0x3A, 0x00,
	0x5C, 0x00, 0x63, 0x00, 0x6F, 0x00, 0x64, 0x00, 0x65, 0x00, 0x5C, 0x00, 0x73, 0x00, 0x61, 0x00,
	0x77, 0x00, 0x62, 0x00, 0x75, 0x00, 0x63, 0x00, 0x6B, 0x00, 0x5C, 0x00, 0x73, 0x00, 0x72, 0x00,
	0x63, 0x00, 0x5C, 0x00, 0x73, 0x00, 0x61, 0x00, 0x77, 0x00, 0x62, 0x00, 0x75, 0x00, 0x63, 0x00,
	0x6B, 0x00, 0x5C, 0x00, 0x44, 0x00, 0x65, 0x00, 0x62, 0x00, 0x75, 0x00, 0x67, 0x00, 0x5C, 0x00,
	0x74, 0x00, 0x65, 0x00, 0x73, 0x00, 0x74, 0x00, 0x5F, 0x00, 0x70, 0x00, 0x72, 0x00, 0x6F, 0x00,
	0x67, 0x00, 0x72, 0x00, 0x61, 0x00, 0x6D, 0x00, 0x2E, 0x00, 0x65, 0x00, 0x78, 0x00, 0x65, 0x00,
	0x00, 0x00,
}

var imageDCStartPayloadV2 = []byte{
	0x00, 0x80, 0xE0, 0x02, 0x00, 0xF8, 0xFF, 0xFF, 0x00, 0x60, 0x5E, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x45, 0xA2, 0x55, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x5C, 0x00, 0x53, 0x00, 0x79, 0x00, 0x73, 0x00,
	0x74, 0x00, 0x65, 0x00, 0x6D, 0x00, 0x52, 0x00, 0x6F, 0x00, 0x6F, 0x00, 0x74, 0x00, 0x5C, 0x00,
	0x73, 0x00, 0x79, 0x00, 0x73, 0x00, 0x74, 0x00, 0x65, 0x00, 0x6D, 0x00, 0x33, 0x00, 0x32, 0x00,
	0x5C, 0x00, 0x6E, 0x00, 0x74, 0x00, 0x6F, 0x00, 0x73, 0x00, 0x6B, 0x00, 0x72, 0x00, 0x6E, 0x00,
	0x6C, 0x00, 0x2E, 0x00, 0x65, 0x00, 0x78, 0x00, 0x65, 0x00, 0x00, 0x00,
}

var imageDCStartPayloadV3 = []byte{
	0x00, 0x00, 0x45, 0x77, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x16, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x04, 0x00, 0x00, 0x00, 0x18, 0xBF, 0x16, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x01, 0x00, 0x00,
	0x00, 0x00, 0x45, 0x77, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x5C, 0x00, 0x44, 0x00, 0x65, 0x00, 0x76, 0x00,
	0x69, 0x00, 0x63, 0x00, 0x65, 0x00, 0x5C, 0x00, 0x48, 0x00, 0x61, 0x00, 0x72, 0x00, 0x64, 0x00,
	0x64, 0x00, 0x69, 0x00, 0x73, 0x00, 0x6B, 0x00, 0x56, 0x00, 0x6F, 0x00, 0x6C, 0x00, 0x75, 0x00,
	0x6D, 0x00, 0x65, 0x00, 0x34, 0x00, 0x5C, 0x00, 0x57, 0x00, 0x69, 0x00, 0x6E, 0x00, 0x64, 0x00,
	0x6F, 0x00, 0x77, 0x00, 0x73, 0x00, 0x5C, 0x00, 0x53, 0x00, 0x79, 0x00, 0x73, 0x00, 0x57, 0x00,
	0x4F, 0x00, 0x57, 0x00, 0x36, 0x00, 0x34, 0x00, 0x5C, 0x00, 0x6E, 0x00, 0x74, 0x00, 0x64, 0x00,
	0x6C, 0x00, 0x6C, 0x00, 0x2E, 0x00, 0x64, 0x00, 0x6C, 0x00, 0x6C, 0x00, 0x00, 0x00,
}

var imageDCEndPayloadV2 = []byte{
	0x00, 0x90, 0xE1, 0x02, 0x00, 0xF8, 0xFF, 0xFF, 0x00, 0x50, 0x5E, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xB3, 0xCB, 0x54, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x5C, 0x00, 0x53, 0x00, 0x79, 0x00, 0x73, 0x00,
	0x74, 0x00, 0x65, 0x00, 0x6D, 0x00, 0x52, 0x00, 0x6F, 0x00, 0x6F, 0x00, 0x74, 0x00, 0x5C, 0x00,
	0x73, 0x00, 0x79, 0x00, 0x73, 0x00, 0x74, 0x00, 0x65, 0x00, 0x6D, 0x00, 0x33, 0x00, 0x32, 0x00,
	0x5C, 0x00, 0x6E, 0x00, 0x74, 0x00, 0x6F, 0x00, 0x73, 0x00, 0x6B, 0x00, 0x72, 0x00, 0x6E, 0x00,
	0x6C, 0x00, 0x2E, 0x00, 0x65, 0x00, 0x78, 0x00, 0x65, 0x00, 0x00, 0x00,
}

var imageDCEndPayloadV3 = []byte{
	0x00, 0xF0, 0x86, 0x74, 0x00, 0xF8, 0xFF, 0xFF, 0x00, 0x10, 0x78, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xD6, 0x20, 0x71, 0x00, 0x9C, 0x8D, 0x71, 0x52, 0x00, 0x01, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x5C, 0x00, 0x53, 0x00, 0x79, 0x00, 0x73, 0x00,
	0x74, 0x00, 0x65, 0x00, 0x6D, 0x00, 0x52, 0x00, 0x6F, 0x00, 0x6F, 0x00, 0x74, 0x00, 0x5C, 0x00,
	0x73, 0x00, 0x79, 0x00, 0x73, 0x00, 0x74, 0x00, 0x65, 0x00, 0x6D, 0x00, 0x33, 0x00, 0x32, 0x00,
	0x5C, 0x00, 0x6E, 0x00, 0x74, 0x00, 0x6F, 0x00, 0x73, 0x00, 0x6B, 0x00, 0x72, 0x00, 0x6E, 0x00,
	0x6C, 0x00, 0x2E, 0x00, 0x65, 0x00, 0x78, 0x00, 0x65, 0x00, 0x00, 0x00,
}

var imageLoadPayloadV0 = []byte{
	0x00, 0x00, 0x16, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0xE0, 0x19, 0x00, 0x43, 0x00, 0x3A, 0x00,
	0x5C, 0x00, 0x63, 0x00, 0x6F, 0x00, 0x64, 0x00, 0x65, 0x00, 0x5C, 0x00, 0x73, 0x00, 0x61, 0x00,
	0x77, 0x00, 0x62, 0x00, 0x75, 0x00, 0x63, 0x00, 0x6B, 0x00, 0x5C, 0x00, 0x73, 0x00, 0x72, 0x00,
	0x63, 0x00, 0x5C, 0x00, 0x73, 0x00, 0x61, 0x00, 0x77, 0x00, 0x62, 0x00, 0x75, 0x00, 0x63, 0x00,
	0x6B, 0x00, 0x5C, 0x00, 0x44, 0x00, 0x65, 0x00, 0x62, 0x00, 0x75, 0x00, 0x67, 0x00, 0x5C, 0x00,
	0x74, 0x00, 0x65, 0x00, 0x73, 0x00, 0x74, 0x00, 0x5F, 0x00, 0x70, 0x00, 0x72, 0x00, 0x6F, 0x00,
	0x67, 0x00, 0x72, 0x00, 0x61, 0x00, 0x6D, 0x00, 0x2E, 0x00, 0x65, 0x00, 0x78, 0x00, 0x65, 0x00,
	0x00, 0x00,
}

var imageLoadPayloadV2 = []byte{
	0x00, 0x00, 0x40, 0x71, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xF4, 0x0E, 0x00, 0x00, 0x9A, 0xFE, 0x00, 0x00, 0xE4, 0xC3, 0x5B, 0x4A, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x50, 0x00, 0x00, 0x00, 0x00, 0x40, 0x71, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x5C, 0x00, 0x57, 0x00, 0x69, 0x00, 0x6E, 0x00,
	0x64, 0x00, 0x6F, 0x00, 0x77, 0x00, 0x73, 0x00, 0x5C, 0x00, 0x53, 0x00, 0x79, 0x00, 0x73, 0x00,
	0x57, 0x00, 0x4F, 0x00, 0x57, 0x00, 0x36, 0x00, 0x34, 0x00, 0x5C, 0x00, 0x77, 0x00, 0x73, 0x00,
	0x63, 0x00, 0x69, 0x00, 0x73, 0x00, 0x76, 0x00, 0x69, 0x00, 0x66, 0x00, 0x2E, 0x00, 0x64, 0x00,
	0x6C, 0x00, 0x6C, 0x00, 0x00, 0x00,
}

var imageLoadPayloadV3 = []byte{
	0x00, 0x00, 0x49, 0x3A, 0xF7, 0x7F, 0x00, 0x00, 0x00, 0x90, 0x06, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x8C, 0x0A, 0x00, 0x00, 0x31, 0x6E, 0x07, 0x00, 0x9D, 0x9D, 0x10, 0x50, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x49, 0x3A, 0xF7, 0x7F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x5C, 0x00, 0x44, 0x00, 0x65, 0x00, 0x76, 0x00,
	0x69, 0x00, 0x63, 0x00, 0x65, 0x00, 0x5C, 0x00, 0x48, 0x00, 0x61, 0x00, 0x72, 0x00, 0x64, 0x00,
	0x64, 0x00, 0x69, 0x00, 0x73, 0x00, 0x6B, 0x00, 0x56, 0x00, 0x6F, 0x00, 0x6C, 0x00, 0x75, 0x00,
	0x6D, 0x00, 0x65, 0x00, 0x34, 0x00, 0x5C, 0x00, 0x50, 0x00, 0x72, 0x00, 0x6F, 0x00, 0x67, 0x00,
	0x72, 0x00, 0x61, 0x00, 0x6D, 0x00, 0x20, 0x00, 0x46, 0x00, 0x69, 0x00, 0x6C, 0x00, 0x65, 0x00,
	0x73, 0x00, 0x20, 0x00, 0x28, 0x00, 0x78, 0x00, 0x38, 0x00, 0x36, 0x00, 0x29, 0x00, 0x5C, 0x00,
	0x57, 0x00, 0x69, 0x00, 0x6E, 0x00, 0x64, 0x00, 0x6F, 0x00, 0x77, 0x00, 0x73, 0x00, 0x20, 0x00,
	0x4B, 0x00, 0x69, 0x00, 0x74, 0x00, 0x73, 0x00, 0x5C, 0x00, 0x38, 0x00, 0x2E, 0x00, 0x30, 0x00,
	0x5C, 0x00, 0x57, 0x00, 0x69, 0x00, 0x6E, 0x00, 0x64, 0x00, 0x6F, 0x00, 0x77, 0x00, 0x73, 0x00,
	0x20, 0x00, 0x50, 0x00, 0x65, 0x00, 0x72, 0x00, 0x66, 0x00, 0x6F, 0x00, 0x72, 0x00, 0x6D, 0x00,
	0x61, 0x00, 0x6E, 0x00, 0x63, 0x00, 0x65, 0x00, 0x20, 0x00, 0x54, 0x00, 0x6F, 0x00, 0x6F, 0x00,
	0x6C, 0x00, 0x6B, 0x00, 0x69, 0x00, 0x74, 0x00, 0x5C, 0x00, 0x78, 0x00, 0x70, 0x00, 0x65, 0x00,
	0x72, 0x00, 0x66, 0x00, 0x2E, 0x00, 0x65, 0x00, 0x78, 0x00, 0x65, 0x00, 0x00, 0x00,
}

var imageKernelBasePayloadV2 = []byte{
	0x00, 0x90, 0xE1, 0x02, 0x00, 0xF8, 0xFF, 0xFF,
}

var imageCases = []decodeCase{
	{
		name:      "ImageUnloadV2",
		provider:  provider.Image,
		version:   2,
		opcode:    2,
		is64:      true,
		payload:   imageUnloadPayloadV2,
		category:  "Image",
		operation: "Unload",
		fields: st(
			fld("BaseAddress", value.ULong(8791654924288)),
			fld("ModuleSize", value.ULong(925696)),
			fld("ProcessId", value.UInt(5956)),
			fld("ImageCheckSum", value.UInt(948129)),
			fld("TimeDateStamp", value.UInt(1247534846)),
			fld("Reserved0", value.UInt(0)),
			fld("DefaultBase", value.ULong(8791654924288)),
			fld("Reserved1", value.UInt(0)),
			fld("Reserved2", value.UInt(0)),
			fld("Reserved3", value.UInt(0)),
			fld("Reserved4", value.UInt(0)),
			fld("ImageFileName", value.WString("\\Windows\\System32\\wbem\\fastprox.dll")),
		),
	},
	{
		name:      "ImageUnloadV3",
		provider:  provider.Image,
		version:   3,
		opcode:    2,
		is64:      true,
		payload:   imageUnloadPayloadV3,
		category:  "Image",
		operation: "Unload",
		fields: st(
			fld("BaseAddress", value.ULong(140723059097600)),
			fld("ModuleSize", value.ULong(933888)),
			fld("ProcessId", value.UInt(2040)),
			fld("ImageCheckSum", value.UInt(929403)),
			fld("TimeDateStamp", value.UInt(1377164984)),
			fld("SignatureLevel", value.UChar(0)),
			fld("SignatureType", value.UChar(0)),
			fld("Reserved0", value.UShort(0)),
			fld("DefaultBase", value.ULong(140723059097600)),
			fld("Reserved1", value.UInt(0)),
			fld("Reserved2", value.UInt(0)),
			fld("Reserved3", value.UInt(0)),
			fld("Reserved4", value.UInt(0)),
			fld("ImageFileName", value.WString("\\Windows\\System32\\wbem\\fastprox.dll")),
		),
	},
	{
		name:      "ImageDCStart32bitsV0",
		provider:  provider.Image,
		version:   0,
		opcode:    3,
		payload:   imageDCStartPayload32bitsV0,
		category:  "Image",
		operation: "DCStart",
		fields: st(
			fld("BaseAddress", value.UInt(18219008)),
			fld("ModuleSize", value.UInt(1695744)),
			fld("ImageFileName", value.WString("C:\\code\\sawbuck\\src\\sawbuck\\Debug\\test_program.exe")),
		),
	},
	{
		name:      "ImageDCStart32bitsV1",
		provider:  provider.Image,
		version:   1,
		opcode:    3,
		payload:   imageDCStartPayload32bitsV1,
		category:  "Image",
		operation: "DCStart",
		fields: st(
			fld("BaseAddress", value.UInt(18219008)),
			fld("ModuleSize", value.UInt(1695744)),
			fld("ProcessId", value.UInt(7644)),
			fld("ImageFileName", value.WString("C:\\code\\sawbuck\\src\\sawbuck\\Debug\\test_program.exe")),
		),
	},
	{
		name:      "ImageDCStart32bitsV2",
		provider:  provider.Image,
		version:   2,
		opcode:    3,
		payload:   imageDCStartPayload32bitsV2,
		category:  "Image",
		operation: "DCStart",
		fields: st(
			fld("BaseAddress", value.UInt(18219008)),
			fld("ModuleSize", value.UInt(1695744)),
			fld("ProcessId", value.UInt(7644)),
			fld("ImageCheckSum", value.UInt(1268934759)),
			fld("TimeDateStamp", value.UInt(3405691582)),
			fld("Reserved0", value.UInt(0)),
			fld("DefaultBase", value.UInt(0)),
			fld("Reserved1", value.UInt(0)),
			fld("Reserved2", value.UInt(0)),
			fld("Reserved3", value.UInt(0)),
			fld("Reserved4", value.UInt(0)),
			fld("ImageFileName", value.WString("C:\\code\\sawbuck\\src\\sawbuck\\Debug\\test_program.exe")),
		),
	},
	{
		name:      "ImageDCStartV2",
		provider:  provider.Image,
		version:   2,
		opcode:    3,
		is64:      true,
		payload:   imageDCStartPayloadV2,
		category:  "Image",
		operation: "DCStart",
		fields: st(
			fld("BaseAddress", value.ULong(18446735277664796672)),
			fld("ModuleSize", value.ULong(6184960)),
			fld("ProcessId", value.UInt(0)),
			fld("ImageCheckSum", value.UInt(5612101)),
			fld("TimeDateStamp", value.UInt(0)),
			fld("Reserved0", value.UInt(0)),
			fld("DefaultBase", value.ULong(0)),
			fld("Reserved1", value.UInt(0)),
			fld("Reserved2", value.UInt(0)),
			fld("Reserved3", value.UInt(0)),
			fld("Reserved4", value.UInt(0)),
			fld("ImageFileName", value.WString("\\SystemRoot\\system32\\ntoskrnl.exe")),
		),
	},
	{
		name:      "ImageDCStartV3",
		provider:  provider.Image,
		version:   3,
		opcode:    3,
		is64:      true,
		payload:   imageDCStartPayloadV3,
		category:  "Image",
		operation: "DCStart",
		fields: st(
			fld("BaseAddress", value.ULong(2001010688)),
			fld("ModuleSize", value.ULong(1474560)),
			fld("ProcessId", value.UInt(4)),
			fld("ImageCheckSum", value.UInt(1490712)),
			fld("TimeDateStamp", value.UInt(0)),
			fld("SignatureLevel", value.UChar(12)),
			fld("SignatureType", value.UChar(1)),
			fld("Reserved0", value.UShort(0)),
			fld("DefaultBase", value.ULong(2001010688)),
			fld("Reserved1", value.UInt(0)),
			fld("Reserved2", value.UInt(0)),
			fld("Reserved3", value.UInt(0)),
			fld("Reserved4", value.UInt(0)),
			fld("ImageFileName", value.WString("\\Device\\HarddiskVolume4\\Windows\\SysWOW64\\ntdll.dll")),
		),
	},
	{
		name:      "ImageDCEndV2",
		provider:  provider.Image,
		version:   2,
		opcode:    4,
		is64:      true,
		payload:   imageDCEndPayloadV2,
		category:  "Image",
		operation: "DCEnd",
		fields: st(
			fld("BaseAddress", value.ULong(18446735277664866304)),
			fld("ModuleSize", value.ULong(6180864)),
			fld("ProcessId", value.UInt(0)),
			fld("ImageCheckSum", value.UInt(5557171)),
			fld("TimeDateStamp", value.UInt(0)),
			fld("Reserved0", value.UInt(0)),
			fld("DefaultBase", value.ULong(0)),
			fld("Reserved1", value.UInt(0)),
			fld("Reserved2", value.UInt(0)),
			fld("Reserved3", value.UInt(0)),
			fld("Reserved4", value.UInt(0)),
			fld("ImageFileName", value.WString("\\SystemRoot\\system32\\ntoskrnl.exe")),
		),
	},
	{
		name:      "ImageDCEndV3",
		provider:  provider.Image,
		version:   3,
		opcode:    4,
		is64:      true,
		payload:   imageDCEndPayloadV3,
		category:  "Image",
		operation: "DCEnd",
		fields: st(
			fld("BaseAddress", value.ULong(18446735279571529728)),
			fld("ModuleSize", value.ULong(7868416)),
			fld("ProcessId", value.UInt(0)),
			fld("ImageCheckSum", value.UInt(7413974)),
			fld("TimeDateStamp", value.UInt(1383173532)),
			fld("SignatureLevel", value.UChar(0)),
			fld("SignatureType", value.UChar(1)),
			fld("Reserved0", value.UShort(0)),
			fld("DefaultBase", value.ULong(0)),
			fld("Reserved1", value.UInt(0)),
			fld("Reserved2", value.UInt(0)),
			fld("Reserved3", value.UInt(0)),
			fld("Reserved4", value.UInt(0)),
			fld("ImageFileName", value.WString("\\SystemRoot\\system32\\ntoskrnl.exe")),
		),
	},
	{
		name:      "ImageLoadV0",
		provider:  provider.Image,
		version:   0,
		opcode:    10,
		is64:      true,
		payload:   imageLoadPayloadV0,
		category:  "Image",
		operation: "Load",
		fields: st(
			fld("BaseAddress", value.ULong(18219008)),
			fld("ModuleSize", value.UInt(1695744)),
			fld("ImageFileName", value.WString("C:\\code\\sawbuck\\src\\sawbuck\\Debug\\test_program.exe")),
		),
	},
	{
		name:      "ImageLoadV2",
		provider:  provider.Image,
		version:   2,
		opcode:    10,
		is64:      true,
		payload:   imageLoadPayloadV2,
		category:  "Image",
		operation: "Load",
		fields: st(
			fld("BaseAddress", value.ULong(1900019712)),
			fld("ModuleSize", value.ULong(32768)),
			fld("ProcessId", value.UInt(3828)),
			fld("ImageCheckSum", value.UInt(65178)),
			fld("TimeDateStamp", value.UInt(1247527908)),
			fld("Reserved0", value.UInt(0)),
			fld("DefaultBase", value.ULong(8160522524795359232)),
			fld("Reserved1", value.UInt(0)),
			fld("Reserved2", value.UInt(0)),
			fld("Reserved3", value.UInt(0)),
			fld("Reserved4", value.UInt(0)),
			fld("ImageFileName", value.WString("\\Windows\\SysWOW64\\wscisvif.dll")),
		),
	},
	{
		name:      "ImageLoadV3",
		provider:  provider.Image,
		version:   3,
		opcode:    10,
		is64:      true,
		payload:   imageLoadPayloadV3,
		category:  "Image",
		operation: "Load",
		fields: st(
			fld("BaseAddress", value.ULong(140699811512320)),
			fld("ModuleSize", value.ULong(430080)),
			fld("ProcessId", value.UInt(2700)),
			fld("ImageCheckSum", value.UInt(486961)),
			fld("TimeDateStamp", value.UInt(1343266205)),
			fld("SignatureLevel", value.UChar(0)),
			fld("SignatureType", value.UChar(0)),
			fld("Reserved0", value.UShort(0)),
			fld("DefaultBase", value.ULong(140699811512320)),
			fld("Reserved1", value.UInt(0)),
			fld("Reserved2", value.UInt(0)),
			fld("Reserved3", value.UInt(0)),
			fld("Reserved4", value.UInt(0)),
			fld("ImageFileName", value.WString("\\Device\\HarddiskVolume4\\Program Files (x86)\\Windows Kits\\8.0\\Windows Performance Toolkit\\xperf.exe")),
		),
	},
	{
		name:      "ImageKernelBaseV2",
		provider:  provider.Image,
		version:   2,
		opcode:    33,
		is64:      true,
		payload:   imageKernelBasePayloadV2,
		category:  "Image",
		operation: "KernelBase",
		fields: st(
			fld("BaseAddress", value.ULong(18446735277664866304)),
		),
	},
}

func TestImageEvents(t *testing.T) {
	runDecodeCases(t, imageCases)
}
