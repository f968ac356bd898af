/*
 * doc.go, part of atomstrain.
 *
 * Copyright 2024 M. Quezada <mquezada{at}pmDOTme>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*
Package v3 implements a Matrix type representing a set of points in 3D
space, i.e. an Nx3 matrix where each row is the cartesian coordinates of a
particle. It is a thin layer over gonum's Dense type, restricted to 3
columns, with the additional functions found useful in atomstrain: row
(vector) views, row selection by index lists, cross products and a few
in-place conveniences. Within the package, a "vector" is a 1x3 row.
*/
package v3
