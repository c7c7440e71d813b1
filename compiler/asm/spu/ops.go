package spu

import "github.com/slowlang/spu/compiler/asm"

// Opcodes.
const (
	NOP asm.Op = iota
	LNOP
	ORIv4i32
	ORIr32
	ORIr64
	ORHIv8i16
	ORHIr16
	ORHI1To2
	ORBIv16i8
	ORBIr8
	ORI2To4
	ORI1To4
	AHIvec
	AHIr16
	AIvec
	AIr32
	SFIvec
	SFIr32
	SFHIvec
	SFHIr16
	ANDIr32
	XORIr32
	SHLIr32
	ORv16i8_i8
	ORv8i16_i16
	ORv4i32_i32
	ORv2i64_i64
	ORv4f32_f32
	ORv2f64_f64
	ORi8_v16i8
	ORi16_v8i16
	ORi32_v4i32
	ORi64_v2i64
	ORf32_v4f32
	ORf64_v2f64
	ORv16i8
	ORv8i16
	ORv4i32
	ORr32
	ORr64
	ORf32
	ORf64
	ORgprc
	ANDr32
	XORr32
	Ar32
	Av4i32
	SFr32
	MPYr32
	CEQr32
	SELBv4i32
	ILr32
	ILv4i32
	ILHr16
	LQDv16i8
	LQDv8i16
	LQDv4i32
	LQDv4f32
	LQDv2f64
	LQDr128
	LQDr64
	LQDr32
	LQDr16
	LQXv4i32
	LQXr128
	LQXr64
	LQXr32
	LQXr16
	LQAr32
	STQDv16i8
	STQDv8i16
	STQDv4i32
	STQDv4f32
	STQDv2f64
	STQDr128
	STQDr64
	STQDr32
	STQDr16
	STQDr8
	STQXv16i8
	STQXv8i16
	STQXv4i32
	STQXv4f32
	STQXv2f64
	STQXr128
	STQXr64
	STQXr32
	STQXr16
	STQXr8
	STQAr32
	BR
	BRSL
	BRNZr32
	RET

	NumOps int = iota
)

const (
	reg  = asm.KindReg
	imm  = asm.KindImm
	addr = asm.KindAddr
	sym  = asm.KindSym
)

var descs = [NumOps]asm.Desc{
	NOP:         {Name: "NOP"},
	LNOP:        {Name: "LNOP"},
	ORIv4i32:    {Name: "ORIv4i32", Args: []asm.Kind{reg, reg, imm}},
	ORIr32:      {Name: "ORIr32", Args: []asm.Kind{reg, reg, imm}},
	ORIr64:      {Name: "ORIr64", Args: []asm.Kind{reg, reg, imm}},
	ORHIv8i16:   {Name: "ORHIv8i16", Args: []asm.Kind{reg, reg, imm}},
	ORHIr16:     {Name: "ORHIr16", Args: []asm.Kind{reg, reg, imm}},
	ORHI1To2:    {Name: "ORHI1To2", Args: []asm.Kind{reg, reg, imm}},
	ORBIv16i8:   {Name: "ORBIv16i8", Args: []asm.Kind{reg, reg, imm}},
	ORBIr8:      {Name: "ORBIr8", Args: []asm.Kind{reg, reg, imm}},
	ORI2To4:     {Name: "ORI2To4", Args: []asm.Kind{reg, reg, imm}},
	ORI1To4:     {Name: "ORI1To4", Args: []asm.Kind{reg, reg, imm}},
	AHIvec:      {Name: "AHIvec", Args: []asm.Kind{reg, reg, imm}},
	AHIr16:      {Name: "AHIr16", Args: []asm.Kind{reg, reg, imm}},
	AIvec:       {Name: "AIvec", Args: []asm.Kind{reg, reg, imm}},
	AIr32:       {Name: "AIr32", Args: []asm.Kind{reg, addr, imm}},
	SFIvec:      {Name: "SFIvec", Args: []asm.Kind{reg, reg, imm}},
	SFIr32:      {Name: "SFIr32", Args: []asm.Kind{reg, reg, imm}},
	SFHIvec:     {Name: "SFHIvec", Args: []asm.Kind{reg, reg, imm}},
	SFHIr16:     {Name: "SFHIr16", Args: []asm.Kind{reg, reg, imm}},
	ANDIr32:     {Name: "ANDIr32", Args: []asm.Kind{reg, reg, imm}},
	XORIr32:     {Name: "XORIr32", Args: []asm.Kind{reg, reg, imm}},
	SHLIr32:     {Name: "SHLIr32", Args: []asm.Kind{reg, reg, imm}},
	ORv16i8_i8:  {Name: "ORv16i8_i8", Args: []asm.Kind{reg, reg, reg}},
	ORv8i16_i16: {Name: "ORv8i16_i16", Args: []asm.Kind{reg, reg, reg}},
	ORv4i32_i32: {Name: "ORv4i32_i32", Args: []asm.Kind{reg, reg, reg}},
	ORv2i64_i64: {Name: "ORv2i64_i64", Args: []asm.Kind{reg, reg, reg}},
	ORv4f32_f32: {Name: "ORv4f32_f32", Args: []asm.Kind{reg, reg, reg}},
	ORv2f64_f64: {Name: "ORv2f64_f64", Args: []asm.Kind{reg, reg, reg}},
	ORi8_v16i8:  {Name: "ORi8_v16i8", Args: []asm.Kind{reg, reg, reg}},
	ORi16_v8i16: {Name: "ORi16_v8i16", Args: []asm.Kind{reg, reg, reg}},
	ORi32_v4i32: {Name: "ORi32_v4i32", Args: []asm.Kind{reg, reg, reg}},
	ORi64_v2i64: {Name: "ORi64_v2i64", Args: []asm.Kind{reg, reg, reg}},
	ORf32_v4f32: {Name: "ORf32_v4f32", Args: []asm.Kind{reg, reg, reg}},
	ORf64_v2f64: {Name: "ORf64_v2f64", Args: []asm.Kind{reg, reg, reg}},
	ORv16i8:     {Name: "ORv16i8", Args: []asm.Kind{reg, reg, reg}},
	ORv8i16:     {Name: "ORv8i16", Args: []asm.Kind{reg, reg, reg}},
	ORv4i32:     {Name: "ORv4i32", Args: []asm.Kind{reg, reg, reg}},
	ORr32:       {Name: "ORr32", Args: []asm.Kind{reg, reg, reg}},
	ORr64:       {Name: "ORr64", Args: []asm.Kind{reg, reg, reg}},
	ORf32:       {Name: "ORf32", Args: []asm.Kind{reg, reg, reg}},
	ORf64:       {Name: "ORf64", Args: []asm.Kind{reg, reg, reg}},
	ORgprc:      {Name: "ORgprc", Args: []asm.Kind{reg, reg, reg}},
	ANDr32:      {Name: "ANDr32", Args: []asm.Kind{reg, reg, reg}},
	XORr32:      {Name: "XORr32", Args: []asm.Kind{reg, reg, reg}},
	Ar32:        {Name: "Ar32", Args: []asm.Kind{reg, reg, reg}},
	Av4i32:      {Name: "Av4i32", Args: []asm.Kind{reg, reg, reg}},
	SFr32:       {Name: "SFr32", Args: []asm.Kind{reg, reg, reg}},
	MPYr32:      {Name: "MPYr32", Args: []asm.Kind{reg, reg, reg}},
	CEQr32:      {Name: "CEQr32", Args: []asm.Kind{reg, reg, reg}},
	SELBv4i32:   {Name: "SELBv4i32", Args: []asm.Kind{reg, reg, reg, reg}},
	ILr32:       {Name: "ILr32", Args: []asm.Kind{reg, imm}},
	ILv4i32:     {Name: "ILv4i32", Args: []asm.Kind{reg, imm}},
	ILHr16:      {Name: "ILHr16", Args: []asm.Kind{reg, imm}},
	LQDv16i8:    {Name: "LQDv16i8", Args: []asm.Kind{reg, imm, addr}},
	LQDv8i16:    {Name: "LQDv8i16", Args: []asm.Kind{reg, imm, addr}},
	LQDv4i32:    {Name: "LQDv4i32", Args: []asm.Kind{reg, imm, addr}},
	LQDv4f32:    {Name: "LQDv4f32", Args: []asm.Kind{reg, imm, addr}},
	LQDv2f64:    {Name: "LQDv2f64", Args: []asm.Kind{reg, imm, addr}},
	LQDr128:     {Name: "LQDr128", Args: []asm.Kind{reg, imm, addr}},
	LQDr64:      {Name: "LQDr64", Args: []asm.Kind{reg, imm, addr}},
	LQDr32:      {Name: "LQDr32", Args: []asm.Kind{reg, imm, addr}},
	LQDr16:      {Name: "LQDr16", Args: []asm.Kind{reg, imm, addr}},
	LQXv4i32:    {Name: "LQXv4i32", Args: []asm.Kind{reg, imm, addr}},
	LQXr128:     {Name: "LQXr128", Args: []asm.Kind{reg, imm, addr}},
	LQXr64:      {Name: "LQXr64", Args: []asm.Kind{reg, imm, addr}},
	LQXr32:      {Name: "LQXr32", Args: []asm.Kind{reg, imm, addr}},
	LQXr16:      {Name: "LQXr16", Args: []asm.Kind{reg, imm, addr}},
	LQAr32:      {Name: "LQAr32", Args: []asm.Kind{reg, sym}},
	STQDv16i8:   {Name: "STQDv16i8", Args: []asm.Kind{reg, imm, addr}},
	STQDv8i16:   {Name: "STQDv8i16", Args: []asm.Kind{reg, imm, addr}},
	STQDv4i32:   {Name: "STQDv4i32", Args: []asm.Kind{reg, imm, addr}},
	STQDv4f32:   {Name: "STQDv4f32", Args: []asm.Kind{reg, imm, addr}},
	STQDv2f64:   {Name: "STQDv2f64", Args: []asm.Kind{reg, imm, addr}},
	STQDr128:    {Name: "STQDr128", Args: []asm.Kind{reg, imm, addr}},
	STQDr64:     {Name: "STQDr64", Args: []asm.Kind{reg, imm, addr}},
	STQDr32:     {Name: "STQDr32", Args: []asm.Kind{reg, imm, addr}},
	STQDr16:     {Name: "STQDr16", Args: []asm.Kind{reg, imm, addr}},
	STQDr8:      {Name: "STQDr8", Args: []asm.Kind{reg, imm, addr}},
	STQXv16i8:   {Name: "STQXv16i8", Args: []asm.Kind{reg, imm, addr}},
	STQXv8i16:   {Name: "STQXv8i16", Args: []asm.Kind{reg, imm, addr}},
	STQXv4i32:   {Name: "STQXv4i32", Args: []asm.Kind{reg, imm, addr}},
	STQXv4f32:   {Name: "STQXv4f32", Args: []asm.Kind{reg, imm, addr}},
	STQXv2f64:   {Name: "STQXv2f64", Args: []asm.Kind{reg, imm, addr}},
	STQXr128:    {Name: "STQXr128", Args: []asm.Kind{reg, imm, addr}},
	STQXr64:     {Name: "STQXr64", Args: []asm.Kind{reg, imm, addr}},
	STQXr32:     {Name: "STQXr32", Args: []asm.Kind{reg, imm, addr}},
	STQXr16:     {Name: "STQXr16", Args: []asm.Kind{reg, imm, addr}},
	STQXr8:      {Name: "STQXr8", Args: []asm.Kind{reg, imm, addr}},
	STQAr32:     {Name: "STQAr32", Args: []asm.Kind{reg, sym}},
	BR:          {Name: "BR", Args: []asm.Kind{sym}},
	BRSL:        {Name: "BRSL", Args: []asm.Kind{sym}},
	BRNZr32:     {Name: "BRNZr32", Args: []asm.Kind{reg, sym}},
	RET:         {Name: "RET"},
}
