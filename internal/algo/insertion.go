package algo

import "github.com/san-kum/algoviz/internal/step"

type Insertion struct{}

func NewInsertion() *Insertion {
	return &Insertion{}
}

func (a *Insertion) Name() string {
	return "insertion"
}

func (a *Insertion) Run(input []int, tr *step.Tracer) []int {
	nums := clone(input)
	for i := 1; i < len(nums); i++ {
		if tr.Stopped() {
			return nums
		}
		key := nums[i]
		j := i - 1
		for j >= 0 && nums[j] > key {
			nums[j+1] = nums[j]
			j--
			if !tr.Emit(nums, j+1) {
				nums[j+1] = key
				return nums
			}
		}
		nums[j+1] = key
		if !tr.Emit(nums) {
			return nums
		}
	}
	return nums
}
