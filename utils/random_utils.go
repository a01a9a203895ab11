package utils

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	mrand "math/rand"
)

// RandomInt32 生成一个安全的随机32位整数
func RandomInt32() int32 {
	var num int32
	err := binary.Read(rand.Reader, binary.BigEndian, &num)
	if err != nil {
		panic("generate random int32 failed")
	}

	return num
}

// NewRand 返回以安全随机数为种子的伪随机数生成器，模拟数据使用
func NewRand() *mrand.Rand {
	return mrand.New(mrand.NewSource(int64(RandomInt32())))
}

// SeededRandom 确定性伪随机数，相同的种子总是返回相同的 [0,1) 值
func SeededRandom(seed float64) float64 {
	x := math.Sin(seed) * 10000
	return x - math.Floor(x)
}

// Between 返回 [min, max) 之间的随机数
func Between(r *mrand.Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Clamp 将 v 限制在 [min, max]
func Clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}
