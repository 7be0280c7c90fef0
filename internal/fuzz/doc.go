// Package fuzztests houses Go fuzz harnesses that exercise the serialized
// tree decoder (bytes -> header -> nodes/tokens). Its goal is to smoke test
// robustness and guard against panics or runaway allocations on arbitrary
// inputs.
//
// Назначение: скармливать декодеру произвольные пары (исходник, буфер) и
// проверять, что он либо возвращает результат, либо ошибку формата.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/loader, internal/testkit.

package fuzztests
