package kernel

import "github.com/tarusov/etwkernel/internal/provider"

// Version 3 of the FileIO events narrows TTID to a UInt and moves it after
// the file object fields.
var (
	fileNameV2 = versions{2: {
		ptr("FileObject"),
		wstr("FileName"),
	}}

	fileCreate = versions{
		2: {
			ptr("IrpPtr"),
			ptr("TTID"),
			ptr("FileObject"),
			u32("CreateOptions"),
			u32("FileAttributes"),
			u32("ShareAccess"),
			wstr("OpenPath"),
		},
		3: {
			ptr("IrpPtr"),
			ptr("FileObject"),
			u32("TTID"),
			u32("CreateOptions"),
			u32("FileAttributes"),
			u32("ShareAccess"),
			wstr("OpenPath"),
		},
	}

	fileSimpleOp = versions{
		2: {
			ptr("IrpPtr"),
			ptr("TTID"),
			ptr("FileObject"),
			ptr("FileKey"),
		},
		3: {
			ptr("IrpPtr"),
			ptr("FileObject"),
			ptr("FileKey"),
			u32("TTID"),
		},
	}

	fileReadWrite = versions{
		2: {
			u64("Offset"),
			ptr("IrpPtr"),
			ptr("TTID"),
			ptr("FileObject"),
			ptr("FileKey"),
			u32("IoSize"),
			u32("IoFlags"),
		},
		3: {
			u64("Offset"),
			ptr("IrpPtr"),
			ptr("FileObject"),
			ptr("FileKey"),
			u32("TTID"),
			u32("IoSize"),
			u32("IoFlags"),
		},
	}

	fileInfo = versions{
		2: {
			ptr("IrpPtr"),
			ptr("TTID"),
			ptr("FileObject"),
			ptr("FileKey"),
			ptr("ExtraInfo"),
			u32("InfoClass"),
		},
		3: {
			ptr("IrpPtr"),
			ptr("FileObject"),
			ptr("FileKey"),
			ptr("ExtraInfo"),
			u32("TTID"),
			u32("InfoClass"),
		},
	}

	fileDirEnum = versions{
		2: {
			ptr("IrpPtr"),
			ptr("TTID"),
			ptr("FileObject"),
			ptr("FileKey"),
			u32("Length"),
			u32("InfoClass"),
			u32("FileIndex"),
			wstr("FileName"),
		},
		3: {
			ptr("IrpPtr"),
			ptr("FileObject"),
			ptr("FileKey"),
			u32("TTID"),
			u32("Length"),
			u32("InfoClass"),
			u32("FileIndex"),
			wstr("FileName"),
		},
	}

	fileOpEndV2 = layout{
		ptr("IrpPtr"),
		ptr("ExtraInfo"),
		u32("NtStatus"),
	}

	filePathV3 = versions{3: {
		ptr("IrpPtr"),
		ptr("FileObject"),
		ptr("FileKey"),
		ptr("ExtraInfo"),
		u32("TTID"),
		u32("InfoClass"),
		wstr("FileName"),
	}}
)

var fileIOEvents = newFamily("FileIO", provider.FileIO).
	op(32, "FileCreate", fileNameV2).
	op(35, "FileDelete", fileNameV2).
	op(36, "FileRundown", fileNameV2).
	op(64, "Create", fileCreate).
	op(65, "Cleanup", fileSimpleOp).
	op(66, "Close", fileSimpleOp).
	op(67, "Read", fileReadWrite).
	op(68, "Write", fileReadWrite).
	op(69, "SetInfo", fileInfo).
	op(70, "Delete", fileInfo).
	op(71, "Rename", fileInfo).
	op(72, "DirEnum", fileDirEnum).
	op(73, "Flush", fileSimpleOp).
	op(74, "QueryInfo", fileInfo).
	op(75, "FSControl", fileInfo).
	op(76, "OperationEnd", versions{2: fileOpEndV2, 3: fileOpEndV2}).
	op(77, "DirNotify", fileDirEnum).
	op(79, "DeletePath", filePathV3).
	op(80, "RenamePath", filePathV3)
